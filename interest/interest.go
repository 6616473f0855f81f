package interest

import (
	"fmt"

	"go-currency-converter"
	"go-currency-converter/format"
)

// FutureValue compounds principal once per year for the given number of years.
// The result carries one step per year, year 0 first. Inputs are expected to be
// validated already: years is bounded, so the recursion is too.
func FutureValue(principal currency.Amount, rate float64, years int) currency.CompoundInterestResult {
	value, steps := compound(principal, 1+rate, years)
	return currency.CompoundInterestResult{
		FutureValue: value,
		Steps:       steps,
	}
}

// compound computes V(n) = V(n-1) * multiplier with V(0) = principal
func compound(principal currency.Amount, multiplier float64, year int) (currency.Amount, []string) {
	if year <= 0 {
		return principal, []string{fmt.Sprintf("Year 0: %v", format.Money(float64(principal)))}
	}

	prev, steps := compound(principal, multiplier, year-1)
	next := prev * currency.Amount(multiplier)
	steps = append(steps, fmt.Sprintf("Year %d: %v × %v = %v",
		year, format.Money(float64(prev)), format.Rate(multiplier), format.Money(float64(next))))
	return next, steps
}
