// Package generate runs the full report pipeline.
package generate

import (
	"errors"
	"fmt"

	"fjacquet/fpa-report/cmd/root"
	"fjacquet/fpa-report/internal/parsererror"
	"fjacquet/fpa-report/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	ratesFile  string
	outputFile string
	fromDate   string
	toDate     string
	csvDir     string
)

// Cmd represents the generate command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the revenue report workbook",
	Long: `Generate walks the transactions folder, loads the rate table, converts all
amounts to USD and writes the report workbook. An optional inclusive date
window narrows the dataset before conversion.`,
	RunE: generateFunc,
}

func init() {
	Cmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "Conversion rates file (xlsx)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Report output file (defaults to the configured name)")
	Cmd.Flags().StringVar(&fromDate, "from", "", "Inclusive window start date")
	Cmd.Flags().StringVar(&toDate, "to", "", "Inclusive window end date")
	Cmd.Flags().StringVar(&csvDir, "csv-dir", "", "Also export the roll-ups as CSV files into this directory")
	_ = Cmd.MarkFlagRequired("rates")
}

func generateFunc(cmd *cobra.Command, args []string) error {
	if root.InputDir == "" {
		return fmt.Errorf("no folder was selected, use --input")
	}

	if outputFile != "" {
		root.Cfg.Report.Output = outputFile
	}

	runner := pipeline.NewRunner(root.Cfg, root.Log)
	summary, err := runner.Run(pipeline.Options{
		InputDir:  root.InputDir,
		RatesFile: ratesFile,
		From:      fromDate,
		To:        toDate,
		CSVDir:    csvDir,
	})
	if err != nil {
		var noData *parsererror.NoDataError
		if errors.As(err, &noData) {
			// Distinguishable outcome, not a failure.
			cmd.Println("No data was combined.")
			return nil
		}
		return err
	}

	cmd.Printf("Report saved as '%s'.\n", summary.OutputFile)
	cmd.Printf("Loaded %d rows (%d in window).\n", summary.RowsLoaded, summary.RowsInWindow)
	if len(summary.MissingCurrencies) > 0 {
		cmd.Printf("Missing conversion rates for currencies: %v\n", summary.MissingCurrencies)
	}
	return nil
}
