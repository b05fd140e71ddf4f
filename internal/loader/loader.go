// Package loader discovers and parses the per-day transaction files under a
// root folder. Files are matched by extension (.xlsx, .csv), dated from a
// DD-MM-YY token in their path, normalized to the canonical five-field
// schema and appended into one dataset. Failures are isolated per file: a
// bad file is logged and skipped, the run continues.
package loader

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"fjacquet/fpa-report/internal/fileutils"
	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"
	"fjacquet/fpa-report/internal/pathdate"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Required logical columns after header normalization.
const (
	ColumnClient      = "Client"
	ColumnCountry     = "Country"
	ColumnCurrency    = "Currency"
	ColumnTransaction = "Transaction"
)

var requiredColumns = []string{ColumnClient, ColumnCountry, ColumnCurrency, ColumnTransaction}

// Load walks the folder tree under root and returns the canonical dataset.
// Only files with a supported extension and a resolvable path date
// contribute; files that fail to parse are logged and skipped. Transaction
// amounts are rounded to 2 decimal places across the full collection.
func Load(root string) ([]models.TransactionRecord, error) {
	if !fileutils.DirectoryExists(root) {
		return nil, fmt.Errorf("folder does not exist: %s", root)
	}

	log.WithField(logging.FieldFolder, root).Info("Loading data from folder")

	var dataset []models.TransactionRecord

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField(logging.FieldFile, path).Error("Error accessing path")
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".xlsx" && ext != ".csv" {
			log.WithField(logging.FieldFile, path).Debug("Skipping non-data file")
			return nil
		}

		date, ok := pathdate.Extract(path)
		if !ok {
			log.WithField(logging.FieldFile, path).Warn("Skipping file - no valid date found in path")
			return nil
		}

		records, err := parseFile(path, ext)
		if err != nil {
			log.WithError(err).WithField(logging.FieldFile, path).Error("Error reading file")
			return nil
		}

		for i := range records {
			records[i].Date = date
		}
		if len(records) > 0 {
			dataset = append(dataset, records...)
		}
		log.WithFields(logrus.Fields{
			logging.FieldFile:  path,
			logging.FieldCount: len(records),
		}).Info("Successfully loaded file")
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking folder %s: %w", root, err)
	}

	for i := range dataset {
		dataset[i].Transaction = dataset[i].Transaction.Round(2)
	}

	log.WithField(logging.FieldCount, len(dataset)).Info("Data loading completed")
	return dataset, nil
}

// parseFile dispatches to the format-appropriate parser.
func parseFile(path, ext string) ([]models.TransactionRecord, error) {
	switch ext {
	case ".xlsx":
		log.WithField(logging.FieldFile, path).Debug("Loading Excel file")
		return parseExcel(path)
	case ".csv":
		log.WithField(logging.FieldFile, path).Debug("Loading CSV file")
		return parseCSV(path)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// normalizeHeader trims whitespace and title-cases a column name, so that
// " client " and "CURRENCY" both resolve to their canonical spelling.
func normalizeHeader(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// mapColumns resolves the index of every required column in a normalized
// header row. Returns the name of the first missing column when the header
// is incomplete.
func mapColumns(header []string) (map[string]int, string) {
	indexes := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		normalized := normalizeHeader(name)
		if _, seen := indexes[normalized]; !seen {
			indexes[normalized] = i
		}
	}
	for _, column := range requiredColumns {
		if _, ok := indexes[column]; !ok {
			return nil, column
		}
	}
	return indexes, ""
}
