package currency

// Code a currency code, e.g. "USD"
type Code string

// Amount a monetary amount... floating point, display rounding happens in format
type Amount float64

// Rate units of a currency per one unit of the base currency
type Rate float64

// Record a single entry of the rate table
type Record struct {
	Code   Code   `json:"code"`
	Rate   Rate   `json:"rate"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// IsBase reports whether r is the base currency, i.e. the one with rate exactly 1
func (r Record) IsBase() bool {
	return r.Rate == 1
}

// ConversionResult outcome of a single conversion request
type ConversionResult struct {
	ConvertedAmount Amount   `json:"convertedAmount"`
	Chain           []string `json:"chain"`
	DirectRate      Rate     `json:"directRate"`
}

// CompoundInterestResult outcome of a future value computation.
// Steps holds one entry per year, year 0 first.
type CompoundInterestResult struct {
	FutureValue Amount   `json:"futureValue"`
	Steps       []string `json:"steps"`
}

// Stats summary metrics derived from the rate table
type Stats struct {
	Count            int     `json:"count"`
	StrongerThanBase int     `json:"strongerThanBase"`
	WeakerThanBase   int     `json:"weakerThanBase"`
	AverageRate      Rate    `json:"averageRate"`
	Max              *Record `json:"max"`
	Min              *Record `json:"min"`
}
