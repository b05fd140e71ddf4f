// Package report renders the revenue report workbook. One sheet carries the
// normalized transactions, three more carry the roll-up views; every sheet
// gets the branded three-row header block, a styled table, auto-sized
// columns and disabled gridlines.
package report

import (
	"fmt"
	"strings"

	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"

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

// Fixed sheet names of the report workbook.
const (
	SheetTransactions  = "Transactions"
	SheetClientTotals  = "Totals in USD"
	SheetMarketSection = "Revenue by Market Section"
	SheetCountry       = "Revenue by Country"
)

const tableStyle = "TableStyleMedium9"

// headerBlockRows is the number of rows occupied by the branded header plus
// its leading blank row; the column header row follows immediately.
const headerBlockRows = 4

// Data bundles everything the workbook renders.
type Data struct {
	Transactions  []models.TransactionRecord
	ClientTotals  []models.ClientTotal
	SegmentTotals []models.SegmentDateTotal
	CountryTotals []models.CountryTotal
}

// Writer renders report workbooks.
type Writer struct {
	OutputFile string
	Year       string
}

// NewWriter creates a report writer targeting the given output file.
func NewWriter(outputFile, year string) *Writer {
	return &Writer{OutputFile: outputFile, Year: year}
}

// Write renders the workbook and saves it to the configured output file,
// overwriting any existing file of that name.
func (w *Writer) Write(data Data) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetTransactions); err != nil {
		return fmt.Errorf("error renaming default sheet: %w", err)
	}

	if err := w.writeSheet(f, SheetTransactions, "Total Transactions Report", "TransactionTable",
		[]string{"Client", "Country", "Currency", "Transaction", "Date"},
		transactionRows(data.Transactions)); err != nil {
		return err
	}

	if err := w.addSheet(f, SheetClientTotals, "Total Transactions by Client in USD", "USDTransactionTable",
		[]string{"Client", "Sum of Transaction USD"},
		clientRows(data.ClientTotals)); err != nil {
		return err
	}

	if err := w.addSheet(f, SheetMarketSection, "Revenue by Market Section", "MarketSectionTable",
		[]string{"Market Section", "Date", "Total Revenue (USD)"},
		segmentRows(data.SegmentTotals)); err != nil {
		return err
	}

	if err := w.addSheet(f, SheetCountry, "Revenue by Country", "GeographyTable",
		[]string{"Country", "Total Revenue (USD)"},
		countryRows(data.CountryTotals)); err != nil {
		return err
	}

	if err := w.polishSheets(f); err != nil {
		return err
	}

	if err := f.SaveAs(w.OutputFile); err != nil {
		return fmt.Errorf("error saving report to %s: %w", w.OutputFile, err)
	}

	log.WithField(logging.FieldOutputFile, w.OutputFile).Info("Report saved")
	return nil
}

// addSheet creates a new sheet and renders it.
func (w *Writer) addSheet(f *excelize.File, sheet, title, tableName string, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", sheet, err)
	}
	return w.writeSheet(f, sheet, title, tableName, headers, rows)
}

// writeSheet renders the branded header block, the column headers, the data
// rows and the styled table onto an existing sheet.
func (w *Writer) writeSheet(f *excelize.File, sheet, title, tableName string, headers []string, rows [][]interface{}) error {
	if err := w.addHeaderBlock(f, sheet, title, len(headers)); err != nil {
		return err
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	all := append([][]interface{}{headerRow}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, headerBlockRows+1+i)
		if err != nil {
			return fmt.Errorf("error computing cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row to %s: %w", sheet, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("error computing column name: %w", err)
	}
	// A table range must span the header plus at least one data row.
	dataRows := len(rows)
	if dataRows == 0 {
		dataRows = 1
	}
	showStripes := true
	table := &excelize.Table{
		Range:             fmt.Sprintf("A%d:%s%d", headerBlockRows+1, lastCol, headerBlockRows+1+dataRows),
		Name:              tableName,
		StyleName:         tableStyle,
		ShowRowStripes:    &showStripes,
		ShowColumnStripes: true,
	}
	if err := f.AddTable(sheet, table); err != nil {
		return fmt.Errorf("error adding table %s: %w", tableName, err)
	}

	return nil
}

// addHeaderBlock writes the branded three-row header merged across the data
// width: company name, upper-cased sheet title, report year.
func (w *Writer) addHeaderBlock(f *excelize.File, sheet, title string, numColumns int) error {
	lastCol, err := excelize.ColumnNumberToName(numColumns)
	if err != nil {
		return fmt.Errorf("error computing column name: %w", err)
	}

	values := map[int]string{
		2: "MARSH MCLENNAN",
		3: strings.ToUpper(title),
		4: w.Year,
	}
	for row := 2; row <= 4; row++ {
		start := fmt.Sprintf("A%d", row)
		if numColumns > 1 {
			if err := f.MergeCell(sheet, start, fmt.Sprintf("%s%d", lastCol, row)); err != nil {
				return fmt.Errorf("error merging header cells: %w", err)
			}
		}
		if err := f.SetCellValue(sheet, start, values[row]); err != nil {
			return fmt.Errorf("error writing header cell: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A2", "A4", style); err != nil {
		return fmt.Errorf("error styling header cells: %w", err)
	}

	return nil
}

// polishSheets auto-sizes column widths to content and disables gridlines on
// every sheet.
func (w *Writer) polishSheets(f *excelize.File) error {
	showGridLines := false
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("error reading sheet %s for sizing: %w", sheet, err)
		}

		widths := map[int]int{}
		for _, row := range rows {
			for col, cell := range row {
				if len(cell) > widths[col] {
					widths[col] = len(cell)
				}
			}
		}
		for col, width := range widths {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				return fmt.Errorf("error computing column name: %w", err)
			}
			if err := f.SetColWidth(sheet, name, name, float64(width+2)); err != nil {
				return fmt.Errorf("error sizing column %s on %s: %w", name, sheet, err)
			}
		}

		if err := f.SetSheetView(sheet, -1, &excelize.ViewOptions{ShowGridLines: &showGridLines}); err != nil {
			return fmt.Errorf("error disabling gridlines on %s: %w", sheet, err)
		}
	}
	return nil
}

func transactionRows(records []models.TransactionRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.Client, r.Country, r.Currency,
			r.Transaction.InexactFloat64(),
			r.Date.Format(models.DateLayout),
		})
	}
	return rows
}

func clientRows(totals []models.ClientTotal) [][]interface{} {
	rows := make([][]interface{}, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []interface{}{t.Client, t.TotalUSD.InexactFloat64()})
	}
	return rows
}

func segmentRows(totals []models.SegmentDateTotal) [][]interface{} {
	rows := make([][]interface{}, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []interface{}{t.Section, t.Date.Format(models.DateLayout), t.TotalUSD.InexactFloat64()})
	}
	return rows
}

func countryRows(totals []models.CountryTotal) [][]interface{} {
	rows := make([][]interface{}, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []interface{}{t.Country, t.TotalUSD.InexactFloat64()})
	}
	return rows
}
