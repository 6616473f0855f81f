package stats

import (
	"cmp"
	"slices"

	"go-currency-converter"
)

// DefaultTopN number of currencies shown on the rate chart
const DefaultTopN = 8

// Compute derives summary metrics from records. Max and Min go to the first record,
// in the given order, holding the extreme rate.
func Compute(records []currency.Record) currency.Stats {
	s := currency.Stats{Count: len(records)}
	if len(records) == 0 {
		return s
	}

	var sum currency.Rate
	for _, r := range records {
		sum += r.Rate
		switch {
		case r.Rate < 1:
			s.StrongerThanBase++
		case r.Rate > 1:
			s.WeakerThanBase++
		}
	}
	s.AverageRate = sum / currency.Rate(len(records))

	desc := sortedByRate(records, true)
	asc := sortedByRate(records, false)
	s.Max = &desc[0]
	s.Min = &asc[0]

	return s
}

// TopN the n records with the highest rate, highest first, leaving out the base currency.
// Equal rates keep their original order.
func TopN(records []currency.Record, n int) []currency.Record {
	nonBase := make([]currency.Record, 0, len(records))
	for _, r := range records {
		if !r.IsBase() {
			nonBase = append(nonBase, r)
		}
	}

	sorted := sortedByRate(nonBase, true)
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// sortedByRate a stable-sorted copy of records
func sortedByRate(records []currency.Record, descending bool) []currency.Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b currency.Record) int {
		if descending {
			return cmp.Compare(b.Rate, a.Rate)
		}
		return cmp.Compare(a.Rate, b.Rate)
	})
	return sorted
}
