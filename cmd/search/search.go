// Package search implements the client-name browser lookup command.
package search

import (
	"fmt"

	"fjacquet/fpa-report/cmd/root"
	"fjacquet/fpa-report/internal/clientsearch"
	"fjacquet/fpa-report/internal/loader"

	"github.com/spf13/cobra"
)

var clientName string

// Cmd represents the search command.
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search a client's name in the browser",
	Long: `Search submits a client name from the loaded dataset as a web search and
leaves the browser open on the results. Names not present in the dataset are
rejected.`,
	RunE: searchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&clientName, "client", "c", "", "Client name to search for")
	_ = Cmd.MarkFlagRequired("client")
}

func searchFunc(cmd *cobra.Command, args []string) error {
	if root.InputDir == "" {
		return fmt.Errorf("no folder was selected, use --input")
	}

	records, err := loader.Load(root.InputDir)
	if err != nil {
		return err
	}
	if !clientsearch.KnownClient(records, clientName) {
		return fmt.Errorf("client '%s' is not present in the loaded data", clientName)
	}

	if err := clientsearch.Search(cmd.Context(), clientName); err != nil {
		root.Log.WithError(err).Error("Error while performing search")
		return err
	}
	return nil
}
