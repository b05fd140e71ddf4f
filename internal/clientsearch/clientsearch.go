// Package clientsearch drives a browser search for a client name taken from
// the loaded dataset. Nothing is captured back: the browser is left on the
// results page for the analyst.
package clientsearch

import (
	"context"
	"fmt"
	"time"

	"fjacquet/fpa-report/internal/logging"
	"fjacquet/fpa-report/internal/models"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SearchURL is the search page the client name is submitted to.
const SearchURL = "https://www.google.com"

// DefaultTimeout bounds how long the browser automation may take.
const DefaultTimeout = 60 * time.Second

// KnownClient reports whether the client name appears in the dataset.
// Only known clients are searched.
func KnownClient(records []models.TransactionRecord, client string) bool {
	for _, r := range records {
		if r.Client == client {
			return true
		}
	}
	return false
}

// Search opens a Chrome window, submits the client name on the search page
// and leaves the browser open. Returns an error when the automation fails;
// the caller logs it and carries on.
func Search(ctx context.Context, client string) error {
	log.WithField(logging.FieldClient, client).Info("Searching for client")

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-extensions", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	// Cancelling would close the browser; keep it open for the analyst and
	// only bound the automation itself.
	_ = cancelAlloc
	_ = cancelBrowser

	runCtx, cancelRun := context.WithTimeout(browserCtx, DefaultTimeout)
	defer cancelRun()

	err := chromedp.Run(runCtx,
		chromedp.Navigate(SearchURL),
		chromedp.WaitVisible(`input[name="q"]`, chromedp.ByQuery),
		chromedp.SendKeys(`input[name="q"]`, client+"\n", chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("error while performing search: %w", err)
	}

	log.Info("Search completed. Browser will remain open")
	return nil
}
