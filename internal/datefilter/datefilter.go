// Package datefilter narrows the canonical dataset to an inclusive date
// window. Filtering never mutates the input: the caller keeps the original
// collection and may re-filter with a different window.
package datefilter

import (
	"fmt"
	"time"

	"fjacquet/fpa-report/internal/models"
)

// BoundLayouts are the accepted formats for user-supplied window bounds.
var BoundLayouts = []string{"2006-01-02", "02-01-2006", "02-01-06"}

// ParseBound parses a user-supplied date bound. The error message names the
// accepted formats so it can be surfaced to the user directly.
func ParseBound(s string) (time.Time, error) {
	for _, layout := range BoundLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date '%s' (expected YYYY-MM-DD, DD-MM-YYYY or DD-MM-YY)", s)
}

// Apply returns the subset of records whose date falls inside [start, end],
// both bounds inclusive. The result is a new slice.
func Apply(records []models.TransactionRecord, start, end time.Time) []models.TransactionRecord {
	filtered := make([]models.TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Session holds an active date-filter window and the filtered view derived
// from the canonical dataset. It is explicit application state owned by the
// orchestrating layer; at most one session is active per run.
type Session struct {
	Start    time.Time
	End      time.Time
	Filtered []models.TransactionRecord
}

// NewSession validates the window bounds and builds the filtered view.
func NewSession(records []models.TransactionRecord, start, end string) (*Session, error) {
	from, err := ParseBound(start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	to, err := ParseBound(end)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			to.Format(models.DateLayout), from.Format(models.DateLayout))
	}

	return &Session{
		Start:    from,
		End:      to,
		Filtered: Apply(records, from, to),
	}, nil
}
