package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	require.NoError(t, ExportCSV(dir, ",", sampleData()))

	clients, err := os.ReadFile(filepath.Join(dir, CSVClientTotals))
	require.NoError(t, err)
	assert.Contains(t, string(clients), "Client,Sum of Transaction USD")
	assert.Contains(t, string(clients), "Acme,100.56")

	sections, err := os.ReadFile(filepath.Join(dir, CSVMarketSection))
	require.NoError(t, err)
	assert.Contains(t, string(sections), "Market Section,Date,Total Revenue (USD)")
	assert.Contains(t, string(sections), "A,2024-03-01,100.56")

	countries, err := os.ReadFile(filepath.Join(dir, CSVCountry))
	require.NoError(t, err)
	assert.Contains(t, string(countries), "UK,62.51")
}

func TestExportCSVCustomDelimiter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	require.NoError(t, ExportCSV(dir, ";", sampleData()))

	clients, err := os.ReadFile(filepath.Join(dir, CSVClientTotals))
	require.NoError(t, err)
	assert.Contains(t, string(clients), "Client;Sum of Transaction USD")
	assert.Contains(t, string(clients), "Acme;100.56")
}

func TestExportCSVEmptyData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	require.NoError(t, ExportCSV(dir, ",", Data{}))

	clients, err := os.ReadFile(filepath.Join(dir, CSVClientTotals))
	require.NoError(t, err)
	assert.Contains(t, string(clients), "Client")
}
