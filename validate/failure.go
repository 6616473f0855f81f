package validate

import (
	"errors"
	"fmt"

	"go-currency-converter"
)

// Kind identifies why an input was rejected
type Kind string

const (
	AmountInvalid   Kind = "AmountInvalid"
	AmountNegative  Kind = "AmountNegative"
	AmountTooLarge  Kind = "AmountTooLarge"
	CurrencyUnknown Kind = "CurrencyUnknown"
	RateOutOfRange  Kind = "RateOutOfRange"
	YearsOutOfRange Kind = "YearsOutOfRange"
)

// Failure a rejected input. Field names the offending input, Code is set for CurrencyUnknown.
// Failure implements error so it can travel through ordinary error returns and be
// recovered with errors.As.
type Failure struct {
	Kind    Kind          `json:"kind"`
	Field   string        `json:"field"`
	Code    currency.Code `json:"code,omitempty"`
	Message string        `json:"message"`
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%v: %v", f.Kind, f.Message)
}

// KindOf returns the Kind of the Failure wrapped in err, ok is false if err carries no Failure
func KindOf(err error) (Kind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return "", false
}
