// Package rates loads the user-supplied currency conversion rate table.
// The rate file is an xlsx workbook with a fixed six-row banner above the
// header; the header must resolve (case-insensitively) to "code" and "rate"
// columns.
package rates

import (
	"fmt"
	"strings"

	"fjacquet/fpa-report/internal/fileutils"
	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"
	"fjacquet/fpa-report/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// HeaderRows is the number of banner rows preceding the header in a rate file.
const HeaderRows = 6

// Load parses a rate-table file into a canonical currency->rate mapping.
// Rows with a missing code or rate are dropped, as are rows whose rate does
// not coerce to a number. Rates are rounded to 2 decimal places. Duplicate
// currency codes resolve last-wins with a logged warning.
func Load(path string) (models.RateTable, error) {
	log.WithField(logging.FieldFile, path).Info("Loading conversion rates")

	if !fileutils.FileExists(path) {
		return nil, fmt.Errorf("rates file does not exist: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening rates file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close rates file")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "xlsx rate table",
			Msg:            "workbook has no sheets",
		}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) <= HeaderRows {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "xlsx rate table",
			Msg:            fmt.Sprintf("expected at least %d header rows and a column row", HeaderRows),
		}
	}

	codeIdx, rateIdx := -1, -1
	for i, name := range rows[HeaderRows] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "code":
			codeIdx = i
		case "rate":
			rateIdx = i
		}
	}
	if codeIdx < 0 {
		return nil, &parsererror.MissingColumnError{FilePath: path, Column: "code"}
	}
	if rateIdx < 0 {
		return nil, &parsererror.MissingColumnError{FilePath: path, Column: "rate"}
	}

	table := models.RateTable{}
	for _, row := range rows[HeaderRows+1:] {
		code := cellAt(row, codeIdx)
		rateStr := cellAt(row, rateIdx)
		if code == "" || rateStr == "" {
			continue
		}

		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			log.WithFields(logrus.Fields{
				logging.FieldCurrency: code,
				logging.FieldRate:     rateStr,
			}).Debug("Dropping rate row that does not coerce to a number")
			continue
		}

		if _, exists := table[code]; exists {
			log.WithField(logging.FieldCurrency, code).Warn("Duplicate currency code in rate table, last value wins")
		}
		table[code] = rate.Round(2)
	}

	log.WithField(logging.FieldCount, len(table)).Info("Conversion rates loaded successfully")
	return table, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
