package loader

import (
	"fmt"

	"fjacquet/fpa-report/internal/currencyutils"
	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"
	"fjacquet/fpa-report/internal/parsererror"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// parseExcel reads the first sheet of an xlsx workbook. Only the four
// required columns are consumed; any other columns are ignored. A missing
// required column fails the whole file.
func parseExcel(path string) ([]models.TransactionRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "xlsx workbook",
			Msg:            "workbook has no sheets",
		}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns, missing := mapColumns(rows[0])
	if missing != "" {
		return nil, &parsererror.MissingColumnError{FilePath: path, Column: missing}
	}

	return rowsToRecords(path, "xlsx", rows[1:], columns), nil
}

// rowsToRecords converts raw string rows into transaction records using the
// resolved column indexes. Rows whose amount cannot be parsed are skipped
// with a warning; short rows are treated as having empty trailing cells.
func rowsToRecords(path, format string, rows [][]string, columns map[string]int) []models.TransactionRecord {
	cell := func(row []string, column string) string {
		idx := columns[column]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []models.TransactionRecord
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		amount, err := currencyutils.ParseAmount(cell(row, ColumnTransaction))
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				logging.FieldFile: path,
				logging.FieldRow:  i + 2,
			}).Warn("Skipping row with unparsable transaction amount")
			continue
		}

		records = append(records, models.TransactionRecord{
			Client:      cell(row, ColumnClient),
			Country:     cell(row, ColumnCountry),
			Currency:    cell(row, ColumnCurrency),
			Transaction: amount,
		})
	}

	if len(records) == 0 {
		log.WithFields(logrus.Fields{
			logging.FieldFile:   path,
			logging.FieldFormat: format,
		}).Debug("File yielded no rows")
	}
	return records
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
