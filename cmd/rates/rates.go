// Package rates implements the rate-table inspection command.
package rates

import (
	"fjacquet/fpa-report/cmd/root"
	"fjacquet/fpa-report/internal/currencyutils"
	"fjacquet/fpa-report/internal/rates"

	"github.com/spf13/cobra"
)

var ratesFile string

// Cmd represents the rates command.
var Cmd = &cobra.Command{
	Use:   "rates",
	Short: "Load and display a conversion rates file",
	Long: `Rates loads a conversion rates file the same way the report generation
does and prints the resulting currency table, so a rate file can be checked
before generating the report.`,
	RunE: ratesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&ratesFile, "rates", "r", "", "Conversion rates file (xlsx)")
	_ = Cmd.MarkFlagRequired("rates")
}

func ratesFunc(cmd *cobra.Command, args []string) error {
	table, err := rates.Load(ratesFile)
	if err != nil {
		root.Log.WithError(err).Error("Error loading conversion rates")
		cmd.Println("Error loading conversion rates.")
		return nil
	}

	for _, currency := range table.Currencies() {
		rate, _ := table.Lookup(currency)
		cmd.Println(currencyutils.FormatAmount(rate, currency))
	}
	cmd.Printf("%d rates loaded.\n", len(table))
	return nil
}
