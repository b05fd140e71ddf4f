package report

import (
	"encoding/csv"
	"fmt"
	"path/filepath"

	"fjacquet/fpa-report/internal/fileutils"
	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"

	"github.com/gocarina/gocsv"
)

// Fixed file names of the optional CSV export.
const (
	CSVClientTotals  = "totals_in_usd.csv"
	CSVMarketSection = "revenue_by_market_section.csv"
	CSVCountry       = "revenue_by_country.csv"
)

// segmentDateRow is the CSV projection of a SegmentDateTotal; the date is
// rendered as text so the export round-trips through spreadsheet tools.
type segmentDateRow struct {
	Section  string `csv:"Market Section"`
	Date     string `csv:"Date"`
	TotalUSD string `csv:"Total Revenue (USD)"`
}

// ExportCSV writes the three roll-up views as CSV files into dir, creating
// the directory if needed. Files are overwritten on each run. The delimiter
// is configurable; an empty string means comma.
func ExportCSV(dir, delimiter string, data Data) error {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return err
	}

	comma := ','
	if delimiter != "" {
		comma = []rune(delimiter)[0]
	}

	if err := writeCSV(filepath.Join(dir, CSVClientTotals), comma, data.ClientTotals); err != nil {
		return err
	}

	segments := make([]segmentDateRow, 0, len(data.SegmentTotals))
	for _, t := range data.SegmentTotals {
		segments = append(segments, segmentDateRow{
			Section:  t.Section,
			Date:     t.Date.Format(models.DateLayout),
			TotalUSD: t.TotalUSD.StringFixed(2),
		})
	}
	if err := writeCSV(filepath.Join(dir, CSVMarketSection), comma, segments); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, CSVCountry), comma, data.CountryTotals); err != nil {
		return err
	}

	log.WithField(logging.FieldOutputFile, dir).Info("Roll-up CSV export completed")
	return nil
}

func writeCSV[T any](path string, comma rune, rows []T) error {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	w := csv.NewWriter(file)
	w.Comma = comma
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return fmt.Errorf("error writing CSV %s: %w", path, err)
	}
	return nil
}
