package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter"
	"go-currency-converter/ratetable"
)

func TestCompute_Default(t *testing.T) {
	records := ratetable.Default().Records()

	got := Compute(records)

	assert.Equal(t, 26, got.Count)
	assert.Equal(t, 3, got.StrongerThanBase)
	assert.Equal(t, 22, got.WeakerThanBase)
	assert.Equal(t, got.Count, got.StrongerThanBase+got.WeakerThanBase+1)

	var sum currency.Rate
	for _, r := range records {
		sum += r.Rate
	}
	assert.InDelta(t, float64(sum)/26, float64(got.AverageRate), 1e-9)

	require.NotNil(t, got.Max)
	require.NotNil(t, got.Min)
	assert.Equal(t, currency.Code("IDR"), got.Max.Code)
	assert.Equal(t, currency.Code("GBP"), got.Min.Code)
}

func TestCompute_Ties(t *testing.T) {
	records := []currency.Record{
		{Code: "USD", Rate: 1},
		{Code: "AAA", Rate: 5},
		{Code: "BBB", Rate: 0.5},
		{Code: "CCC", Rate: 5},
		{Code: "DDD", Rate: 0.5},
	}

	got := Compute(records)

	assert.Equal(t, currency.Code("AAA"), got.Max.Code)
	assert.Equal(t, currency.Code("BBB"), got.Min.Code)
	assert.Equal(t, 2, got.StrongerThanBase)
	assert.Equal(t, 2, got.WeakerThanBase)
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil)

	assert.Equal(t, 0, got.Count)
	assert.Nil(t, got.Max)
	assert.Nil(t, got.Min)
}

func TestTopN(t *testing.T) {
	records := ratetable.Default().Records()

	got := TopN(records, DefaultTopN)

	codes := make([]currency.Code, 0, len(got))
	for _, r := range got {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []currency.Code{"IDR", "KRW", "JPY", "RUB", "INR", "THB", "TRY", "ZAR"}, codes)
}

func TestTopN_Bounds(t *testing.T) {
	records := ratetable.Default().Records()

	assert.Len(t, TopN(records, 100), 25, "base currency is left out")
	assert.Empty(t, TopN(records, 0))
	assert.Empty(t, TopN(records, -3))
}

func TestTopN_DoesNotReorderInput(t *testing.T) {
	records := ratetable.Default().Records()
	before := ratetable.Default().Records()

	_ = TopN(records, 5)
	_ = Compute(records)

	assert.Equal(t, before, records)
}
