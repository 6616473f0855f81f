package exchange

import (
	"errors"
	"fmt"

	"go-currency-converter"
	"go-currency-converter/format"
)

var (
	// ErrUnknownCurrency a currency code that should have been rejected by validation reached the converter
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrChainTooDeep the conversion chain exceeded maxHops
	ErrChainTooDeep = errors.New("conversion chain too deep")
)

// maxHops bounds the recursion of chain. Routing through the base currency needs at most 2.
const maxHops = 3

// Table the rate table as seen by the converter
type Table interface {
	Lookup(code currency.Code) (currency.Record, bool)
	Base() currency.Record
}

// Convert converts amount from one currency to another by way of the base currency,
// recording every step in the chain. Inputs are expected to be validated already.
func Convert(table Table, amount currency.Amount, from currency.Code, to currency.Code) (currency.ConversionResult, error) {
	fromRecord, ok := table.Lookup(from)
	if !ok {
		return currency.ConversionResult{}, fmt.Errorf("convert from [%v]: %w", from, ErrUnknownCurrency)
	}
	toRecord, ok := table.Lookup(to)
	if !ok {
		return currency.ConversionResult{}, fmt.Errorf("convert to [%v]: %w", to, ErrUnknownCurrency)
	}

	converted, steps, err := chain(table.Base(), fromRecord, toRecord, amount, nil, 0)
	if err != nil {
		return currency.ConversionResult{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, err)
	}

	return currency.ConversionResult{
		ConvertedAmount: converted,
		Chain:           steps,
		DirectRate:      DirectRate(fromRecord, toRecord),
	}, nil
}

// DirectRate units of to per one unit of from
func DirectRate(from, to currency.Record) currency.Rate {
	return to.Rate / from.Rate
}

// chain performs one hop of a conversion and recurses until amount is expressed in to.
// A cross conversion first hops into base, so recursion never goes deeper than 2.
func chain(base, from, to currency.Record, amount currency.Amount, steps []string, hops int) (currency.Amount, []string, error) {
	if hops >= maxHops {
		return 0, steps, fmt.Errorf("%d hops: %w", hops, ErrChainTooDeep)
	}

	switch {
	case from.Code == to.Code:
		steps = append(steps, fmt.Sprintf("%v %v → %v %v (same currency)",
			format.Amount(float64(amount)), from.Code, format.Amount(float64(amount)), to.Code))
		return amount, steps, nil

	case from.Code != base.Code && to.Code != base.Code:
		inBase := toBase(base, from, amount, &steps)
		return chain(base, base, to, inBase, steps, hops+1)

	case to.Code == base.Code:
		result := toBase(base, from, amount, &steps)
		return result, steps, nil

	default:
		result := amount * currency.Amount(to.Rate)
		steps = append(steps, fmt.Sprintf("%v %v × %v = %v %v",
			format.Amount(float64(amount)), base.Code, format.Rate(float64(to.Rate)), format.Amount(float64(result)), to.Code))
		return result, steps, nil
	}
}

// toBase divides amount by the rate of from, giving the amount in base
func toBase(base, from currency.Record, amount currency.Amount, steps *[]string) currency.Amount {
	result := amount / currency.Amount(from.Rate)
	*steps = append(*steps, fmt.Sprintf("%v %v ÷ %v = %v %v",
		format.Amount(float64(amount)), from.Code, format.Rate(float64(from.Rate)), format.Amount(float64(result)), base.Code))
	return result
}
