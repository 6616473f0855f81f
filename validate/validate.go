package validate

import (
	"fmt"
	"math"

	"go-currency-converter"
)

const (
	// MaxAmount largest accepted amount, inclusive
	MaxAmount currency.Amount = 999_999_999_999

	MinYears = 1
	MaxYears = 50
)

// Registry looks up currency records by code
type Registry interface {
	Lookup(code currency.Code) (currency.Record, bool)
}

// Amount checks that amount is a finite, non-negative number no larger than MaxAmount.
// It returns nil when the amount is acceptable.
func Amount(field string, amount currency.Amount) *Failure {
	f := float64(amount)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return &Failure{
			Kind:    AmountInvalid,
			Field:   field,
			Message: fmt.Sprintf("%v must be a valid number", field),
		}
	case amount < 0:
		return &Failure{
			Kind:    AmountNegative,
			Field:   field,
			Message: fmt.Sprintf("%v cannot be negative", field),
		}
	case amount > MaxAmount:
		return &Failure{
			Kind:    AmountTooLarge,
			Field:   field,
			Message: fmt.Sprintf("%v cannot exceed 999,999,999,999", field),
		}
	}
	return nil
}

// Currency checks that code is registered
func Currency(registry Registry, field string, code currency.Code) *Failure {
	if _, ok := registry.Lookup(code); !ok {
		return &Failure{
			Kind:    CurrencyUnknown,
			Field:   field,
			Code:    code,
			Message: fmt.Sprintf("unknown currency code: %q", code),
		}
	}
	return nil
}

// InterestRate checks that rate is a fraction in [0, 1]
func InterestRate(field string, rate float64) *Failure {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return &Failure{
			Kind:    RateOutOfRange,
			Field:   field,
			Message: fmt.Sprintf("%v must be between 0%% and 100%%", field),
		}
	}
	return nil
}

// Years checks that years is within [MinYears, MaxYears]
func Years(field string, years int) *Failure {
	if years < MinYears || years > MaxYears {
		return &Failure{
			Kind:    YearsOutOfRange,
			Field:   field,
			Message: fmt.Sprintf("%v must be between %d and %d", field, MinYears, MaxYears),
		}
	}
	return nil
}
