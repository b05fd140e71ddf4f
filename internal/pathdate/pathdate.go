// Package pathdate extracts transaction dates embedded in file paths.
// Source folders carry their business date as a DD-MM-YY token, e.g.
// "transactions/01-03-24/region1.xlsx".
package pathdate

import (
	"regexp"
	"time"

	"fjacquet/fpa-report/internal/logging"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DateLayout is the layout of date tokens embedded in file paths (DD-MM-YY).
const DateLayout = "02-01-06"

var datePattern = regexp.MustCompile(`\b\d{2}-\d{2}-\d{2}\b`)

// Extract finds the first DD-MM-YY token in path and parses it as a calendar
// date. Returns false when no token is present or the token is not a valid
// date; a parse failure is logged as a warning, never raised.
func Extract(path string) (time.Time, bool) {
	match := datePattern.FindString(path)
	if match == "" {
		return time.Time{}, false
	}

	date, err := time.Parse(DateLayout, match)
	if err != nil {
		log.WithError(err).WithField(logging.FieldFile, path).Warn("Error parsing date from path")
		return time.Time{}, false
	}

	return date, true
}
