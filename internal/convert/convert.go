// Package convert joins the canonical dataset against the rate table and
// derives the USD-equivalent transaction amount.
package convert

import (
	"sort"

	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"
	"fjacquet/fpa-report/internal/store"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ToUSD performs a left join of records against the rate table on Currency.
// Every record is preserved: a currency with no matching rate yields a USD
// amount of zero and the currency is reported in the returned missing set
// (sorted, distinct). TransactionUSD is rounded to 2 decimal places.
// Currency aliases, when provided, are applied before the join.
func ToUSD(records []models.TransactionRecord, rates models.RateTable, aliases map[string]string) ([]models.ConvertedRecord, []string) {
	log.Info("Calculating transactions in USD")

	converted := make([]models.ConvertedRecord, 0, len(records))
	missing := map[string]bool{}

	for _, record := range records {
		currency := store.Resolve(aliases, record.Currency)

		out := models.ConvertedRecord{TransactionRecord: record}
		if rate, ok := rates.Lookup(currency); ok {
			out.TransactionUSD = record.Transaction.Mul(rate).Round(2)
		} else {
			missing[record.Currency] = true
		}
		converted = append(converted, out)
	}

	missingList := make([]string, 0, len(missing))
	for currency := range missing {
		missingList = append(missingList, currency)
	}
	sort.Strings(missingList)

	if len(missingList) > 0 {
		log.WithField(logging.FieldCurrencies, missingList).Warn("Missing conversion rates for currencies")
	}
	log.Info("USD transaction calculation completed")

	return converted, missingList
}
