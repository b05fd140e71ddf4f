package convert

import (
	"testing"
	"time"

	"fjacquet/fpa-report/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(client, country, currency string, amount float64) models.TransactionRecord {
	return models.TransactionRecord{
		Client:      client,
		Country:     country,
		Currency:    currency,
		Transaction: decimal.NewFromFloat(amount).Round(2),
		Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestToUSD(t *testing.T) {
	records := []models.TransactionRecord{
		record("Acme", "US", "USD", 100.56),
		record("Beta", "UK", "GBP", 50.01),
	}
	rates := models.RateTable{
		"USD": decimal.NewFromFloat(1.00),
		"GBP": decimal.NewFromFloat(1.25),
	}

	converted, missing := ToUSD(records, rates, nil)

	require.Len(t, converted, 2)
	assert.Empty(t, missing)
	assert.Equal(t, "100.56", converted[0].TransactionUSD.StringFixed(2))
	assert.Equal(t, "62.51", converted[1].TransactionUSD.StringFixed(2))
}

func TestToUSDMissingRateKeepsRecord(t *testing.T) {
	records := []models.TransactionRecord{
		record("Acme", "US", "USD", 10),
		record("Gamma", "JP", "XYZ", 99),
		record("Delta", "JP", "XYZ", 1),
	}
	rates := models.RateTable{"USD": decimal.NewFromInt(1)}

	converted, missing := ToUSD(records, rates, nil)

	require.Len(t, converted, 3)
	assert.Equal(t, []string{"XYZ"}, missing)
	assert.True(t, converted[1].TransactionUSD.IsZero())
	assert.True(t, converted[2].TransactionUSD.IsZero())
}

func TestToUSDMissingSetIsCurrencyDifference(t *testing.T) {
	records := []models.TransactionRecord{
		record("A", "US", "USD", 1),
		record("B", "UK", "GBP", 1),
		record("C", "CH", "CHF", 1),
	}
	rates := models.RateTable{"USD": decimal.NewFromInt(1)}

	_, missing := ToUSD(records, rates, nil)
	assert.Equal(t, []string{"CHF", "GBP"}, missing)
}

func TestToUSDEmptyRateTableDegrades(t *testing.T) {
	records := []models.TransactionRecord{record("Acme", "US", "USD", 10)}

	converted, missing := ToUSD(records, models.RateTable{}, nil)

	require.Len(t, converted, 1)
	assert.True(t, converted[0].TransactionUSD.IsZero())
	assert.Equal(t, []string{"USD"}, missing)
}

func TestToUSDAppliesAliases(t *testing.T) {
	records := []models.TransactionRecord{record("Acme", "US", "US Dollar", 10)}
	rates := models.RateTable{"USD": decimal.NewFromInt(1)}
	aliases := map[string]string{"US DOLLAR": "USD"}

	converted, missing := ToUSD(records, rates, aliases)

	assert.Empty(t, missing)
	assert.Equal(t, "10.00", converted[0].TransactionUSD.StringFixed(2))
	// The record itself keeps its source spelling.
	assert.Equal(t, "US Dollar", converted[0].Currency)
}

func TestToUSDRoundsProduct(t *testing.T) {
	records := []models.TransactionRecord{record("Acme", "US", "GBP", 50.01)}
	rates := models.RateTable{"GBP": decimal.NewFromFloat(1.333)}

	converted, _ := ToUSD(records, rates, nil)

	// 50.01 * 1.333 = 66.66333 -> 66.66
	assert.Equal(t, "66.66", converted[0].TransactionUSD.StringFixed(2))
}

func TestToUSDEmptyInput(t *testing.T) {
	converted, missing := ToUSD(nil, models.RateTable{}, nil)
	assert.Empty(t, converted)
	assert.Empty(t, missing)
}
