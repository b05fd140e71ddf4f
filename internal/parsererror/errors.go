// Package parsererror defines the typed errors produced by the ingestion
// pipeline. Stages catch and log these rather than propagating them; the
// types exist so callers and tests can name exactly what went wrong.
package parsererror

import "fmt"

// ParseError represents a failure to parse a single field of a source row.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports that a required column is absent from a source
// file after header normalization. It names the exact missing column so the
// diagnostic log can point at the offending file.
type MissingColumnError struct {
	FilePath string
	Column   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file '%s' is missing required column '%s'", e.FilePath, e.Column)
}

// InvalidFormatError represents an input file that does not conform to any
// supported data format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// NoDataError is returned when a full folder walk yields zero usable rows.
// It is a distinguishable outcome, not a crash: callers report it to the
// user and leave the application ready for another run.
type NoDataError struct {
	Folder string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data was combined from folder '%s'", e.Folder)
}
