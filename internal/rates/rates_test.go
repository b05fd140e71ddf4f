package rates

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeRatesFile builds an xlsx rate table with the standard six banner rows
// followed by the given header and data rows.
func writeRatesFile(t *testing.T, path string, header []interface{}, data [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i := 0; i < HeaderRows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, "banner"))
	}

	rows := append([][]interface{}{header}, data...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, HeaderRows+i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	writeRatesFile(t, path,
		[]interface{}{"Code", "Rate", "Comment"},
		[][]interface{}{
			{"USD", 1.0, "base"},
			{"GBP", 1.254, ""},
			{"EUR", 1.08, ""},
		})

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table, 3)

	rate, ok := table.Lookup("GBP")
	require.True(t, ok)
	// Rates are rounded to 2 decimals on load.
	assert.True(t, rate.Equal(decimal.NewFromFloat(1.25)))
}

func TestLoadCaseInsensitiveHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	writeRatesFile(t, path,
		[]interface{}{"CODE", "rate"},
		[][]interface{}{{"CHF", 1.1}})

	table, err := Load(path)
	require.NoError(t, err)
	_, ok := table.Lookup("CHF")
	assert.True(t, ok)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	writeRatesFile(t, path,
		[]interface{}{"Code", "Value"},
		[][]interface{}{{"USD", 1.0}})

	_, err := Load(path)
	require.Error(t, err)

	var missing *parsererror.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "rate", missing.Column)
}

func TestLoadDropsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	writeRatesFile(t, path,
		[]interface{}{"Code", "Rate"},
		[][]interface{}{
			{"USD", 1.0},
			{"", 2.0},           // missing code
			{"GBP", ""},         // missing rate
			{"EUR", "not-a-number"}, // non-numeric rate
		})

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"USD"}, table.Currencies())
}

func TestLoadDuplicateCodeLastWins(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	SetLogger(logger)
	defer SetLogger(logrus.New())

	path := filepath.Join(t.TempDir(), "rates.xlsx")
	writeRatesFile(t, path,
		[]interface{}{"Code", "Rate"},
		[][]interface{}{
			{"USD", 1.0},
			{"USD", 1.5},
		})

	table, err := Load(path)
	require.NoError(t, err)
	rate, ok := table.Lookup("USD")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(1.5)))
	assert.Contains(t, buf.String(), logging.FieldCurrency+"=USD")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestLoadTooFewRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "banner"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path)
	assert.Error(t, err)
}
