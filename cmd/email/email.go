// Package email implements the report-distribution command.
package email

import (
	"fjacquet/fpa-report/cmd/root"
	"fjacquet/fpa-report/internal/mailer"

	"github.com/spf13/cobra"
)

var recipient string

// Cmd represents the email command.
var Cmd = &cobra.Command{
	Use:   "email",
	Short: "Compose the report email in the default mail client",
	Long: `Email opens a pre-filled draft for distributing the generated report.
The report file is not attached automatically.`,
	RunE: emailFunc,
}

func init() {
	Cmd.Flags().StringVar(&recipient, "to", "", "Recipient address (defaults to the configured recipient)")
}

func emailFunc(cmd *cobra.Command, args []string) error {
	to := recipient
	if to == "" {
		to = root.Cfg.Email.Recipient
	}

	if err := mailer.Send(to); err != nil {
		return err
	}
	cmd.Println("Mail draft opened.")
	return nil
}
