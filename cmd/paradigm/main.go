// Command paradigm prints generated Latin paradigms and maintains the
// inflected-form index from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/paradigm/internal/logger"
)

var (
	verbose    bool
	jsonOutput bool

	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "paradigm",
	Short: "Generate Latin paradigms and look up inflected forms",
	Long: `paradigm generates the full inflection of Latin nouns, adjectives,
pronouns and verbs from their dictionary data, and builds an index from
every generated form back to its headword.

Examples:
  paradigm decline rosa --declension 1 --gender f --genitive rosae
  paradigm conjugate amo --conjugation 1 --parts "amo, amare, amavi, amatum"
  paradigm index --lexicon data/ --db index.db
  paradigm lookup amavit --db index.db`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.NewConsole(verbose)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// printForms writes a flat paradigm as a two-column table in key order,
// or as JSON.
func printForms(w io.Writer, forms map[string]string) error {
	if jsonOutput {
		return printJSON(w, forms)
	}
	keys := make([]string, 0, len(forms))
	for k := range forms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, forms[k])
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
