package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"
	"fjacquet/fpa-report/internal/parsererror"

	"github.com/sirupsen/logrus"
)

// sniffSampleSize is how many leading bytes are inspected to detect the
// field delimiter of a delimited-text file.
const sniffSampleSize = 2048

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// parseCSV reads a delimited-text file. The delimiter is auto-detected from
// a leading sample; malformed rows are skipped rather than failing the file.
func parseCSV(path string) ([]models.TransactionRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	sample := make([]byte, sniffSampleSize)
	n, err := file.Read(sample)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("error sampling CSV file: %w", err)
	}
	delimiter := sniffDelimiter(string(sample[:n]))
	log.WithFields(logrus.Fields{
		logging.FieldFile:      path,
		logging.FieldDelimiter: string(delimiter),
	}).Debug("Detected CSV delimiter")

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("error rewinding CSV file: %w", err)
	}

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &parsererror.ParseError{
			Parser: "csv",
			Field:  "header",
			Value:  path,
			Err:    err,
		}
	}

	columns, missing := mapColumns(header)
	if missing != "" {
		return nil, &parsererror.MissingColumnError{FilePath: path, Column: missing}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.WithError(err).WithField(logging.FieldFile, path).Warn("Skipping malformed CSV row")
			continue
		}
		rows = append(rows, record)
	}

	return rowsToRecords(path, "csv", rows, columns), nil
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// first line of the sample. Falls back to comma when the sample is
// inconclusive.
func sniffDelimiter(sample string) rune {
	firstLine := sample
	if idx := strings.IndexByte(sample, '\n'); idx >= 0 {
		firstLine = sample[:idx]
	}

	best := ','
	bestCount := 0
	for _, candidate := range delimiterCandidates {
		count := strings.Count(firstLine, string(candidate))
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
