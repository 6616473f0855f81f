package interest

import (
	"context"

	"go-currency-converter"
	"go-currency-converter/validate"
)

// Service interface for compound interest projections
type Service interface {
	// Compute projects principal over years at ratePercent per year, e.g. 5 for 5%
	Compute(ctx context.Context, principal currency.Amount, ratePercent float64, years int) (currency.CompoundInterestResult, error)
}

type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return &service{}
}

// Compute validates the inputs and computes the future value.
// The first invalid input is returned as a *validate.Failure and nothing is computed.
func (s *service) Compute(_ context.Context, principal currency.Amount, ratePercent float64, years int) (currency.CompoundInterestResult, error) {
	rate := ratePercent / 100

	if f := validate.Amount("principal", principal); f != nil {
		return currency.CompoundInterestResult{}, f
	}
	if f := validate.InterestRate("ratePercent", rate); f != nil {
		return currency.CompoundInterestResult{}, f
	}
	if f := validate.Years("years", years); f != nil {
		return currency.CompoundInterestResult{}, f
	}

	return FutureValue(principal, rate, years), nil
}
