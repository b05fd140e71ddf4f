// Package rollup produces the grouped revenue summaries over the converted
// dataset. The three views are independent pure passes; each returns rows
// sorted by group key so report output is deterministic.
package rollup

import (
	"sort"

	"fjacquet/fpa-report/internal/models"

	"github.com/shopspring/decimal"
)

// ByClient groups the converted records by client and sums TransactionUSD.
func ByClient(records []models.ConvertedRecord) []models.ClientTotal {
	totals := map[string]decimal.Decimal{}
	for _, r := range records {
		totals[r.Client] = totals[r.Client].Add(r.TransactionUSD)
	}

	rows := make([]models.ClientTotal, 0, len(totals))
	for client, total := range totals {
		rows = append(rows, models.ClientTotal{Client: client, TotalUSD: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Client < rows[j].Client })
	return rows
}

// BySegmentDate groups by market section and date and sums TransactionUSD.
// The market section is the first character of the client name.
func BySegmentDate(records []models.ConvertedRecord) []models.SegmentDateTotal {
	type key struct {
		section string
		date    string
	}
	totals := map[key]models.SegmentDateTotal{}

	for _, r := range records {
		k := key{section: marketSection(r.Client), date: r.Date.Format(models.DateLayout)}
		row, ok := totals[k]
		if !ok {
			row = models.SegmentDateTotal{Section: k.section, Date: r.Date}
		}
		row.TotalUSD = row.TotalUSD.Add(r.TransactionUSD)
		totals[k] = row
	}

	rows := make([]models.SegmentDateTotal, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Section != rows[j].Section {
			return rows[i].Section < rows[j].Section
		}
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// ByCountry groups the converted records by country and sums TransactionUSD.
func ByCountry(records []models.ConvertedRecord) []models.CountryTotal {
	totals := map[string]decimal.Decimal{}
	for _, r := range records {
		totals[r.Country] = totals[r.Country].Add(r.TransactionUSD)
	}

	rows := make([]models.CountryTotal, 0, len(totals))
	for country, total := range totals {
		rows = append(rows, models.CountryTotal{Country: country, TotalUSD: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Country < rows[j].Country })
	return rows
}

// marketSection derives the single-character market section code from a
// client name. Empty client names map to an empty section.
func marketSection(client string) string {
	for _, r := range client {
		return string(r)
	}
	return ""
}
