package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RateTable maps a currency code to its conversion rate into USD.
// Codes are unique; the loader resolves duplicates before the table is built.
type RateTable map[string]decimal.Decimal

// Lookup returns the rate for a currency code and whether it exists.
func (t RateTable) Lookup(currency string) (decimal.Decimal, bool) {
	rate, ok := t[currency]
	return rate, ok
}

// Currencies returns all currency codes in the table, sorted.
func (t RateTable) Currencies() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsEmpty reports whether the table holds no rates. A failed rate-table load
// degrades to an empty table rather than aborting the run.
func (t RateTable) IsEmpty() bool {
	return len(t) == 0
}
