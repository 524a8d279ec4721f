package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/paradigm"
)

var fold bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Lower-case text and strip its diacritics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if fold {
			text = paradigm.Fold(text)
		} else {
			text = paradigm.Normalize(text)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&fold, "fold", false, "Also fold j/v to i/u and expand ligatures")
	rootCmd.AddCommand(normalizeCmd)
}
