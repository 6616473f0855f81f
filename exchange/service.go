package exchange

import (
	"context"

	"go-currency-converter"
	"go-currency-converter/validate"
)

// Service interface for converting from one currency to another
type Service interface {
	Convert(ctx context.Context, amount currency.Amount, from currency.Code, to currency.Code) (currency.ConversionResult, error)
	Currencies(ctx context.Context) ([]currency.Record, error)
}

// RateTable the rate table as seen by the service
type RateTable interface {
	Table
	Records() []currency.Record
}

// service converts with a static rate table
type service struct {
	// table read-only rates, safe for concurrent reads
	table RateTable
}

// NewService constructs a valid Service
func NewService(table RateTable) Service {
	return &service{
		table: table,
	}
}

// Convert validates the inputs and computes a conversion from one currency to another.
// The first invalid input is returned as a *validate.Failure and nothing is converted.
func (s *service) Convert(_ context.Context, amount currency.Amount, from currency.Code, to currency.Code) (currency.ConversionResult, error) {
	if f := validate.Amount("amount", amount); f != nil {
		return currency.ConversionResult{}, f
	}
	if f := validate.Currency(s.table, "fromCurrency", from); f != nil {
		return currency.ConversionResult{}, f
	}
	if f := validate.Currency(s.table, "toCurrency", to); f != nil {
		return currency.ConversionResult{}, f
	}

	return Convert(s.table, amount, from, to)
}

// Currencies lists every supported currency in table order
func (s *service) Currencies(_ context.Context) ([]currency.Record, error) {
	return s.table.Records(), nil
}
