// Package pipeline orchestrates one full report run: load the folder tree,
// optionally narrow to a date window, load rates, convert to USD, build the
// roll-ups and write the report. Stage failures follow the degraded-result
// policy: per-file and per-row problems are logged and skipped, a failed
// rate load converts nothing, and only an unwritable report surfaces as an
// error.
package pipeline

import (
	"time"

	"fjacquet/fpa-report/internal/config"
	"fjacquet/fpa-report/internal/convert"
	"fjacquet/fpa-report/internal/datefilter"
	"fjacquet/fpa-report/internal/loader"
	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"
	"fjacquet/fpa-report/internal/parsererror"
	"fjacquet/fpa-report/internal/pathdate"
	"fjacquet/fpa-report/internal/rates"
	"fjacquet/fpa-report/internal/report"
	"fjacquet/fpa-report/internal/rollup"
	"fjacquet/fpa-report/internal/store"

	"github.com/sirupsen/logrus"
)

// Options are the inputs of one pipeline run.
type Options struct {
	InputDir  string
	RatesFile string
	// From/To bound an optional inclusive date window; both empty means no
	// filtering.
	From   string
	To     string
	CSVDir string
}

// Summary describes the outcome of a completed run.
type Summary struct {
	RowsLoaded        int
	RowsInWindow      int
	RatesLoaded       int
	MissingCurrencies []string
	OutputFile        string
}

// Runner executes pipeline runs with a fixed configuration.
type Runner struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewRunner creates a Runner. The logger is propagated to every stage.
func NewRunner(cfg *config.Config, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
	}
	pathdate.SetLogger(logger)
	loader.SetLogger(logger)
	rates.SetLogger(logger)
	convert.SetLogger(logger)
	report.SetLogger(logger)
	store.SetLogger(logger)

	return &Runner{cfg: cfg, log: logger}
}

// Run executes one full batch run and writes the report workbook. A folder
// that combines to zero rows returns a *parsererror.NoDataError.
func (r *Runner) Run(opts Options) (*Summary, error) {
	dataset, err := loader.Load(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(dataset) == 0 {
		return nil, &parsererror.NoDataError{Folder: opts.InputDir}
	}

	// The canonical dataset is kept as loaded; filtering yields a new view.
	view := dataset
	if opts.From != "" || opts.To != "" {
		from, to := opts.From, opts.To
		// A single-sided window defaults the other bound to the dataset edge.
		minDate, maxDate := dateRange(dataset)
		if from == "" {
			from = minDate.Format(models.DateLayout)
		}
		if to == "" {
			to = maxDate.Format(models.DateLayout)
		}
		session, err := datefilter.NewSession(dataset, from, to)
		if err != nil {
			return nil, err
		}
		view = session.Filtered
		r.log.WithFields(logrus.Fields{
			"from":             session.Start.Format(models.DateLayout),
			"to":               session.End.Format(models.DateLayout),
			logging.FieldCount: len(view),
		}).Info("Applied date filter")
	}

	rateTable, err := rates.Load(opts.RatesFile)
	if err != nil {
		// Degraded run: every conversion misses and yields zero USD.
		r.log.WithError(err).Error("Error loading conversion rates")
		rateTable = models.RateTable{}
	}
	if rateTable.IsEmpty() {
		r.log.Warn("Rate table is empty, every conversion will fall back to zero USD")
	}

	aliases, err := store.NewAliasStore(r.cfg.Rates.AliasFile).Load()
	if err != nil {
		r.log.WithError(err).Warn("Could not load currency aliases")
		aliases = map[string]string{}
	}

	converted, missing := convert.ToUSD(view, rateTable, aliases)

	data := report.Data{
		Transactions:  view,
		ClientTotals:  rollup.ByClient(converted),
		SegmentTotals: rollup.BySegmentDate(converted),
		CountryTotals: rollup.ByCountry(converted),
	}

	writer := report.NewWriter(r.cfg.Report.Output, r.cfg.Report.Year)
	if err := writer.Write(data); err != nil {
		return nil, err
	}

	if opts.CSVDir != "" {
		if err := report.ExportCSV(opts.CSVDir, r.cfg.CSV.Delimiter, data); err != nil {
			return nil, err
		}
	}

	return &Summary{
		RowsLoaded:        len(dataset),
		RowsInWindow:      len(view),
		RatesLoaded:       len(rateTable),
		MissingCurrencies: missing,
		OutputFile:        r.cfg.Report.Output,
	}, nil
}

// dateRange returns the earliest and latest transaction dates in the dataset.
func dateRange(records []models.TransactionRecord) (time.Time, time.Time) {
	min, max := records[0].Date, records[0].Date
	for _, rec := range records[1:] {
		if rec.Date.Before(min) {
			min = rec.Date
		}
		if rec.Date.After(max) {
			max = rec.Date
		}
	}
	return min, max
}
