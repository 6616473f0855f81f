package exchange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter"
	"go-currency-converter/ratetable"
)

func TestConvert(t *testing.T) {
	table := ratetable.Default()

	type args struct {
		amount currency.Amount
		from   currency.Code
		to     currency.Code
	}
	tests := []struct {
		name       string
		args       args
		wantAmount currency.Amount
		wantRate   currency.Rate
		wantChain  []string
	}{
		{
			"usd -> eur",
			args{100, "USD", "EUR"},
			92.0,
			0.92,
			[]string{"100.00 USD × 0.92 = 92.0000 EUR"},
		},
		{
			"eur -> usd",
			args{92, "EUR", "USD"},
			100,
			1 / 0.92,
			[]string{"92.0000 EUR ÷ 0.92 = 100.00 USD"},
		},
		{
			"eur -> gbp",
			args{100, "EUR", "GBP"},
			100 / 0.92 * 0.79,
			0.79 / 0.92,
			[]string{
				"100.00 EUR ÷ 0.92 = 108.70 USD",
				"108.70 USD × 0.79 = 85.8696 GBP",
			},
		},
		{
			"gbp -> gbp",
			args{100, "GBP", "GBP"},
			100,
			1,
			[]string{"100.00 GBP → 100.00 GBP (same currency)"},
		},
		{
			"usd -> usd",
			args{0.5, "USD", "USD"},
			0.5,
			1,
			[]string{"0.500000 USD → 0.500000 USD (same currency)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(table, tt.args.amount, tt.args.from, tt.args.to)
			require.NoError(t, err)
			assert.InDelta(t, float64(tt.wantAmount), float64(got.ConvertedAmount), 1e-9)
			assert.InDelta(t, float64(tt.wantRate), float64(got.DirectRate), 1e-12)
			assert.Equal(t, tt.wantChain, got.Chain)
		})
	}
}

func TestConvert_Scenarios(t *testing.T) {
	table := ratetable.Default()

	got, err := Convert(table, 100, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, currency.Amount(92.0), got.ConvertedAmount)
	assert.Equal(t, currency.Rate(0.92), got.DirectRate)

	got, err = Convert(table, 100, "EUR", "GBP")
	require.NoError(t, err)
	assert.InDelta(t, 85.8696, float64(got.ConvertedAmount), 1e-4)
}

func TestConvert_Identity(t *testing.T) {
	table := ratetable.Default()

	for _, r := range table.Records() {
		for _, amount := range []currency.Amount{0, 0.01, 1, 123.456, 999_999_999_999} {
			got, err := Convert(table, amount, r.Code, r.Code)
			require.NoError(t, err)
			assert.Equal(t, amount, got.ConvertedAmount, "%v %v", amount, r.Code)
			assert.Len(t, got.Chain, 1)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	table := ratetable.Default()
	records := table.Records()

	for _, x := range records {
		for _, y := range records {
			there, err := Convert(table, 1234.5, x.Code, y.Code)
			require.NoError(t, err)
			back, err := Convert(table, there.ConvertedAmount, y.Code, x.Code)
			require.NoError(t, err)
			assert.InEpsilon(t, 1234.5, float64(back.ConvertedAmount), 1e-12, "%v -> %v -> %v", x.Code, y.Code, x.Code)

			assert.InEpsilon(t, 1.0, float64(DirectRate(x, y)*DirectRate(y, x)), 1e-12, "%v <-> %v", x.Code, y.Code)
		}
	}
}

func TestConvert_ChainLength(t *testing.T) {
	table := ratetable.Default()

	got, err := Convert(table, 10, "JPY", "INR")
	require.NoError(t, err)
	assert.Len(t, got.Chain, 2)

	got, err = Convert(table, 10, "JPY", "USD")
	require.NoError(t, err)
	assert.Len(t, got.Chain, 1)

	got, err = Convert(table, 10, "USD", "JPY")
	require.NoError(t, err)
	assert.Len(t, got.Chain, 1)
}

func TestConvert_UnknownCurrency(t *testing.T) {
	table := ratetable.Default()

	_, err := Convert(table, 10, "ZZZ", "USD")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))

	_, err = Convert(table, 10, "USD", "ZZZ")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestChain_DepthGuard(t *testing.T) {
	table := ratetable.Default()
	eur, _ := table.Lookup("EUR")
	gbp, _ := table.Lookup("GBP")

	_, _, err := chain(table.Base(), eur, gbp, 10, nil, maxHops)
	assert.True(t, errors.Is(err, ErrChainTooDeep))

	// one hop left is not enough for a cross conversion
	_, steps, err := chain(table.Base(), eur, gbp, 10, nil, maxHops-1)
	assert.True(t, errors.Is(err, ErrChainTooDeep))
	assert.Len(t, steps, 1)
}
