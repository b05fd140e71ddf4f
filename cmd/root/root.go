// Package root contains the root command for the application.
package root

import (
	"fjacquet/fpa-report/internal/clientsearch"
	"fjacquet/fpa-report/internal/config"
	"fjacquet/fpa-report/internal/convert"
	"fjacquet/fpa-report/internal/loader"
	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/mailer"
	"fjacquet/fpa-report/internal/pathdate"
	"fjacquet/fpa-report/internal/rates"
	"fjacquet/fpa-report/internal/report"
	"fjacquet/fpa-report/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the application configuration, resolved before any command runs.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fpa-report",
		Short: "Generate the FP&A revenue report from a folder of transaction files.",
		Long: `fpa-report ingests a folder tree of per-day transaction files (xlsx and
csv), converts the amounts to USD with a user-supplied rate table and writes
a formatted revenue report workbook with roll-ups by client, market section
and country.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fpa-report!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLogging(Cfg)

			// Propagate the configured logger to every stage.
			pathdate.SetLogger(Log)
			loader.SetLogger(Log)
			rates.SetLogger(Log)
			convert.SetLogger(Log)
			report.SetLogger(Log)
			store.SetLogger(Log)
			mailer.SetLogger(Log)
			clientsearch.SetLogger(Log)
		},
	}

	// InputDir is the transactions folder, shared by the commands that load data.
	InputDir string
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&InputDir, "input", "i", "", "Folder with total transactions for a year")
}
