// Package mailer composes the report-distribution email draft. The draft is
// a mailto: URL with a fixed subject and body, opened in the user's default
// mail client; the report file itself is not attached.
package mailer

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Fixed template of the report email.
const (
	Subject = "Marsh McLennan Revenue Report"
	Body    = "Please find attached the Revenue Report. (Remember to attach the file before sending)"
)

// ComposeURL builds the mailto: URL for the report draft.
func ComposeURL(recipient string) string {
	query := url.Values{}
	query.Set("subject", Subject)
	query.Set("body", Body)
	return fmt.Sprintf("mailto:%s?%s", recipient, query.Encode())
}

// Send opens the pre-filled draft in the default mail client.
func Send(recipient string) error {
	mailto := ComposeURL(recipient)
	log.WithField("recipient", recipient).Info("Opening mail client with report draft")
	return openURL(mailto)
}

// openURL launches the platform handler for a URL.
func openURL(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error opening mail client: %w", err)
	}
	return nil
}
