// Command compassctl samples question sets, scores answer files and lists
// archetypes without running the HTTP service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "compassctl",
		Short:         "Offline tools for the crypto political compass",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newQuestionsCmd(), newScoreCmd(), newArchetypesCmd())
	return root
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
