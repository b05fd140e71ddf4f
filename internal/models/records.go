// Package models defines the canonical data structures shared by the
// ingestion, conversion and roll-up stages.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the display format used for transaction dates in reports
// and CSV exports.
const DateLayout = "2006-01-02"

// TransactionRecord is one normalized line item from a source file.
// Records are immutable once loaded; derived stages produce new collections
// instead of mutating the canonical dataset.
type TransactionRecord struct {
	Client      string          `csv:"Client"`
	Country     string          `csv:"Country"`
	Currency    string          `csv:"Currency"`
	Transaction decimal.Decimal `csv:"Transaction"`
	Date        time.Time       `csv:"-"`
}

// ConvertedRecord is a TransactionRecord augmented with its USD equivalent.
type ConvertedRecord struct {
	TransactionRecord
	TransactionUSD decimal.Decimal
}

// ClientTotal is one row of the by-client roll-up.
type ClientTotal struct {
	Client   string          `csv:"Client"`
	TotalUSD decimal.Decimal `csv:"Sum of Transaction USD"`
}

// SegmentDateTotal is one row of the market-section by date roll-up.
// The market section is the first character of the client name.
type SegmentDateTotal struct {
	Section  string
	Date     time.Time
	TotalUSD decimal.Decimal
}

// CountryTotal is one row of the by-country roll-up.
type CountryTotal struct {
	Country  string          `csv:"Country"`
	TotalUSD decimal.Decimal `csv:"Total Revenue (USD)"`
}
