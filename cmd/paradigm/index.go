package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cours-de-latin/paradigm"
	"github.com/cours-de-latin/paradigm/index"
	"github.com/cours-de-latin/paradigm/lexicon"
	"github.com/cours-de-latin/paradigm/store/sqlite"
)

var (
	lexiconPaths []string
	dbPath       string
	workers      int
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Generate every lexicon entry and store the form index",
	Long: `Loads the lexicon, generates the paradigm of every entry and replaces
the stored index with the result. Entries that cannot be generated are
listed in the report and do not stop the run.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [form...]",
	Short: "Find the headwords and slots that produce a form",
	Long: `Looks each form up in the index stored by "paradigm index" (--db), or
in an index built on the fly from --lexicon. Forms ending in an enclitic
(-que, -ne, -ve) are retried without it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report lexicon entries that lack the data to generate",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	for _, c := range []*cobra.Command{indexCmd, lookupCmd, validateCmd} {
		c.Flags().StringSliceVarP(&lexiconPaths, "lexicon", "l", nil, "Lexicon files or directories")
	}
	for _, c := range []*cobra.Command{indexCmd, lookupCmd} {
		c.Flags().StringVar(&dbPath, "db", "", "SQLite index database")
		c.Flags().IntVarP(&workers, "workers", "w", index.DefaultWorkers, "Parallel generators")
	}
	_ = indexCmd.MarkFlagRequired("lexicon")
	_ = validateCmd.MarkFlagRequired("lexicon")

	rootCmd.AddCommand(indexCmd, lookupCmd, validateCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	entries, err := lexicon.LoadPaths(lexiconPaths...)
	if err != nil {
		return err
	}

	sink := index.Sink(index.NewTable())
	if dbPath != "" {
		store, err := sqlite.Open(ctx, dbPath, log.Named("store"))
		if err != nil {
			return err
		}
		defer store.Close()
		sink = store
	}

	rep, err := index.New(workers, log.Named("indexer")).Run(ctx, entries, sink)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rep)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d entries, %d indexed, %d uninflected, %d forms\n",
		rep.RunID, rep.Entries, rep.Indexed, rep.Uninflected, rep.Forms)
	for _, p := range rep.Problems {
		fmt.Fprintf(out, "  %s: %s\n", p.EntryID, p.Error)
	}
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	table, err := loadTable(ctx)
	if err != nil {
		return err
	}

	var results []index.Result
	for _, form := range args {
		results = append(results, table.Lookup(form))
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), results)
	}
	out := cmd.OutOrStdout()
	for _, res := range results {
		if len(res.Matches) == 0 {
			fmt.Fprintf(out, "%s: not found\n", res.Query)
			continue
		}
		for _, m := range res.Matches {
			line := fmt.Sprintf("%s: %s %s", res.Query, m.Lemma, m.Key)
			if m.Key == "" {
				line = fmt.Sprintf("%s: %s (%s)", res.Query, m.Lemma, m.PartOfSpeech)
			}
			if res.Enclitic != "" {
				line += " +" + res.Enclitic
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

// loadTable fills a table from the stored index, or builds one from the
// lexicon when no database is given.
func loadTable(ctx context.Context) (*index.Table, error) {
	table := index.NewTable()
	switch {
	case dbPath != "":
		store, err := sqlite.Open(ctx, dbPath, log.Named("store"))
		if err != nil {
			return nil, err
		}
		defer store.Close()
		runID, rows, err := store.Rows(ctx)
		if errors.Is(err, index.ErrNoRun) {
			return nil, fmt.Errorf("%s: %w; run \"paradigm index\" first", dbPath, err)
		}
		if err != nil {
			return nil, err
		}
		log.Debug("index loaded", zap.String("run_id", runID), zap.Int("forms", len(rows)))
		return table, table.Replace(ctx, runID, rows)
	case len(lexiconPaths) > 0:
		entries, err := lexicon.LoadPaths(lexiconPaths...)
		if err != nil {
			return nil, err
		}
		if _, err := index.New(workers, log.Named("indexer")).Run(ctx, entries, table); err != nil {
			return nil, err
		}
		return table, nil
	}
	return nil, errors.New("either --db or --lexicon is required")
}

func runValidate(cmd *cobra.Command, args []string) error {
	entries, err := lexicon.LoadPaths(lexiconPaths...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	bad := 0
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			bad++
			fmt.Fprintf(out, "%s: %v\n", e.Ref(), err)
		}
	}
	fmt.Fprintf(out, "%d entries, %d with problems\n", len(entries), bad)
	if bad > 0 {
		return fmt.Errorf("%d invalid entries: %w", bad, paradigm.ErrMissingData)
	}
	return nil
}
