package ratetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter"
)

func TestDefault(t *testing.T) {
	table := Default()

	assert.Equal(t, 26, table.Len())
	assert.Equal(t, currency.Code("USD"), table.Base().Code)
	assert.Equal(t, currency.Rate(1), table.Base().Rate)

	for _, r := range table.Records() {
		got, ok := table.Lookup(r.Code)
		require.True(t, ok, "lookup %v", r.Code)
		assert.Greater(t, float64(got.Rate), 0.0, "rate of %v", r.Code)
		assert.NotEmpty(t, got.Name)
		assert.NotEmpty(t, got.Symbol)
	}

	eur, ok := table.Lookup("EUR")
	require.True(t, ok)
	assert.Equal(t, currency.Rate(0.92), eur.Rate)

	gbp, ok := table.Lookup("GBP")
	require.True(t, ok)
	assert.Equal(t, currency.Rate(0.79), gbp.Rate)
}

func TestTable_LookupUnknown(t *testing.T) {
	table := Default()

	_, ok := table.Lookup("ZZZ")
	assert.False(t, ok)

	_, ok = table.Lookup("usd")
	assert.False(t, ok)
}

func TestTable_RecordsIsCopy(t *testing.T) {
	table := Default()

	records := table.Records()
	records[0].Rate = 42

	assert.Equal(t, currency.Rate(1), table.Records()[0].Rate)
	assert.Equal(t, currency.Code("USD"), table.Base().Code)
}

func TestNew(t *testing.T) {
	usd := currency.Record{Code: "USD", Rate: 1, Name: "US Dollar", Symbol: "$"}
	eur := currency.Record{Code: "EUR", Rate: 0.92, Name: "Euro", Symbol: "€"}

	tests := []struct {
		name    string
		records []currency.Record
		wantErr bool
	}{
		{"valid", []currency.Record{usd, eur}, false},
		{"empty", nil, true},
		{"no base", []currency.Record{eur}, true},
		{"two bases", []currency.Record{usd, {Code: "XXX", Rate: 1}}, true},
		{"duplicate", []currency.Record{usd, eur, eur}, true},
		{"zero rate", []currency.Record{usd, {Code: "XXX", Rate: 0}}, true},
		{"negative rate", []currency.Record{usd, {Code: "XXX", Rate: -2}}, true},
		{"empty code", []currency.Record{usd, {Code: "", Rate: 2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.records...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.records), got.Len())
		})
	}
}
