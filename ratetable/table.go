package ratetable

import (
	"errors"
	"fmt"
	"math"

	"go-currency-converter"
)

// Table a fixed set of currency records. A Table is read-only once built,
// so it is safe for concurrent reads.
type Table struct {
	// records in insertion order
	records []currency.Record

	// index maps a code to its position in records
	index map[currency.Code]int

	// base position of the base currency in records
	base int
}

// New builds a Table from records, keeping their order.
// Every rate must be positive and finite, codes must be unique and exactly one
// record must be the base currency (rate == 1).
func New(records ...currency.Record) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("rate table: no records")
	}

	t := &Table{
		records: make([]currency.Record, 0, len(records)),
		index:   make(map[currency.Code]int, len(records)),
		base:    -1,
	}

	for _, r := range records {
		if r.Code == "" {
			return nil, errors.New("rate table: empty currency code")
		}
		if _, ok := t.index[r.Code]; ok {
			return nil, fmt.Errorf("rate table: duplicate currency code [%v]", r.Code)
		}
		if math.IsNaN(float64(r.Rate)) || math.IsInf(float64(r.Rate), 0) || r.Rate <= 0 {
			return nil, fmt.Errorf("rate table: bad rate for [%v]: %v", r.Code, r.Rate)
		}
		if r.IsBase() {
			if t.base >= 0 {
				return nil, fmt.Errorf("rate table: second base currency [%v]", r.Code)
			}
			t.base = len(t.records)
		}
		t.index[r.Code] = len(t.records)
		t.records = append(t.records, r)
	}

	if t.base < 0 {
		return nil, errors.New("rate table: no base currency with rate 1")
	}

	return t, nil
}

// Lookup returns the record for code, ok is false if the code is not registered
func (t *Table) Lookup(code currency.Code) (currency.Record, bool) {
	i, ok := t.index[code]
	if !ok {
		return currency.Record{}, false
	}
	return t.records[i], true
}

// Base the base currency record
func (t *Table) Base() currency.Record {
	return t.records[t.base]
}

// Records a copy of all records in insertion order
func (t *Table) Records() []currency.Record {
	out := make([]currency.Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len number of records
func (t *Table) Len() int {
	return len(t.records)
}
