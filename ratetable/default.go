package ratetable

import (
	"go-currency-converter"
)

// defaultRecords units of each currency per one US dollar
var defaultRecords = []currency.Record{
	{Code: "USD", Rate: 1, Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Rate: 0.92, Name: "Euro", Symbol: "€"},
	{Code: "GBP", Rate: 0.79, Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Rate: 149.50, Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CNY", Rate: 7.24, Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "INR", Rate: 83.12, Name: "Indian Rupee", Symbol: "₹"},
	{Code: "CAD", Rate: 1.36, Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Rate: 1.53, Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Rate: 0.88, Name: "Swiss Franc", Symbol: "Fr"},
	{Code: "KRW", Rate: 1320.50, Name: "South Korean Won", Symbol: "₩"},
	{Code: "BRL", Rate: 4.97, Name: "Brazilian Real", Symbol: "R$"},
	{Code: "MXN", Rate: 17.15, Name: "Mexican Peso", Symbol: "$"},
	{Code: "RUB", Rate: 92.50, Name: "Russian Ruble", Symbol: "₽"},
	{Code: "ZAR", Rate: 18.65, Name: "South African Rand", Symbol: "R"},
	{Code: "SGD", Rate: 1.34, Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "HKD", Rate: 7.82, Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "NZD", Rate: 1.64, Name: "New Zealand Dollar", Symbol: "NZ$"},
	{Code: "SEK", Rate: 10.42, Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Rate: 10.55, Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "DKK", Rate: 6.87, Name: "Danish Krone", Symbol: "kr"},
	{Code: "PLN", Rate: 4.02, Name: "Polish Zloty", Symbol: "zł"},
	{Code: "TRY", Rate: 28.75, Name: "Turkish Lira", Symbol: "₺"},
	{Code: "THB", Rate: 35.60, Name: "Thai Baht", Symbol: "฿"},
	{Code: "IDR", Rate: 15650, Name: "Indonesian Rupiah", Symbol: "Rp"},
	{Code: "AED", Rate: 3.67, Name: "UAE Dirham", Symbol: "د.إ"},
	{Code: "SAR", Rate: 3.75, Name: "Saudi Riyal", Symbol: "﷼"},
}

// Default the compiled-in table of 26 currencies with USD as base
func Default() *Table {
	t, err := New(defaultRecords...)
	if err != nil {
		// defaultRecords is fixed at compile time, so this is a programming defect
		panic(err)
	}
	return t
}
