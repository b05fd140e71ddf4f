package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	underlying := errors.New("bad decimal")
	err := &ParseError{
		Parser: "csv",
		Field:  "Transaction",
		Value:  "abc",
		Err:    underlying,
	}

	assert.Contains(t, err.Error(), "Transaction")
	assert.Contains(t, err.Error(), "abc")
	assert.Equal(t, underlying, errors.Unwrap(err))
}

func TestMissingColumnError(t *testing.T) {
	err := &MissingColumnError{FilePath: "data/01-03-24/report.xlsx", Column: "Currency"}
	assert.Contains(t, err.Error(), "Currency")
	assert.Contains(t, err.Error(), "report.xlsx")
}

func TestNoDataError(t *testing.T) {
	err := &NoDataError{Folder: "/tmp/empty"}
	assert.Contains(t, err.Error(), "no data was combined")

	var target *NoDataError
	assert.True(t, errors.As(error(err), &target))
}
