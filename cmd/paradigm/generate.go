package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/paradigm"
)

var (
	declension   string
	gender       string
	genitive     string
	parisyllabic bool
	invariable   bool
	adjective    bool

	conjugation string
	parts       string
)

var declineCmd = &cobra.Command{
	Use:   "decline [lemma]",
	Short: "Print the case forms of a noun or adjective",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecline,
}

var conjugateCmd = &cobra.Command{
	Use:   "conjugate [lemma]",
	Short: "Print the finite forms, imperatives and infinitives of a verb",
	Args:  cobra.ExactArgs(1),
	RunE:  runConjugate,
}

var participlesCmd = &cobra.Command{
	Use:   "participles [lemma]",
	Short: "Print the participles of a verb",
	Args:  cobra.ExactArgs(1),
	RunE:  runParticiples,
}

var pronounCmd = &cobra.Command{
	Use:   "pronoun [lemma]",
	Short: "Print the forms of a personal, demonstrative or relative pronoun",
	Args:  cobra.ExactArgs(1),
	RunE:  runPronoun,
}

func init() {
	declineCmd.Flags().StringVarP(&declension, "declension", "d", "", "Declension: 1-5 or irregular")
	declineCmd.Flags().StringVarP(&gender, "gender", "g", "", "Gender: m, f, n or m/f (nouns only)")
	declineCmd.Flags().StringVar(&genitive, "genitive", "", "Genitive singular")
	declineCmd.Flags().BoolVar(&parisyllabic, "parisyllabic", false, "Third declension genitive plural in -ium")
	declineCmd.Flags().BoolVar(&invariable, "invariable", false, "Indeclinable: every form is the lemma")
	declineCmd.Flags().BoolVarP(&adjective, "adjective", "a", false, "Decline as an adjective, in all three genders")

	for _, c := range []*cobra.Command{conjugateCmd, participlesCmd} {
		c.Flags().StringVarP(&conjugation, "conjugation", "c", "", "Conjugation: 1, 2, 3, 3io, 4 or irregular")
		c.Flags().StringVarP(&parts, "parts", "p", "", `Principal parts, e.g. "amo, amare, amavi, amatum"`)
	}

	rootCmd.AddCommand(declineCmd, conjugateCmd, participlesCmd, pronounCmd)
}

func runDecline(cmd *cobra.Command, args []string) error {
	lemma := args[0]
	if invariable {
		return printForms(cmd.OutOrStdout(), paradigm.DeclineInvariable(lemma, nil).Strings())
	}
	d, err := paradigm.ParseDeclension(declension)
	if err != nil {
		return err
	}

	if adjective {
		flat := make(map[string]string)
		for g, forms := range paradigm.DeclineAdjective(lemma, d, genitive, nil) {
			for k, v := range forms {
				flat[k.WithGender(g).String()] = v
			}
		}
		if len(flat) == 0 {
			return fmt.Errorf("no forms for %q: %w", lemma, paradigm.ErrMissingData)
		}
		return printForms(cmd.OutOrStdout(), flat)
	}

	g, err := paradigm.ParseGender(gender)
	if err != nil {
		return err
	}
	forms := paradigm.DeclineNoun(lemma, d, g, genitive, nil, parisyllabic)
	if len(forms) == 0 {
		return fmt.Errorf("no forms for %q: %w", lemma, paradigm.ErrMissingData)
	}
	return printForms(cmd.OutOrStdout(), forms.Strings())
}

func runConjugate(cmd *cobra.Command, args []string) error {
	c, err := paradigm.ParseConjugation(conjugation)
	if err != nil {
		return err
	}
	forms := paradigm.ConjugateVerb(args[0], c, parts, nil)
	if len(forms) == 0 {
		return fmt.Errorf("no forms for %q: %w", args[0], paradigm.ErrMissingData)
	}
	return printForms(cmd.OutOrStdout(), forms.Strings())
}

func runParticiples(cmd *cobra.Command, args []string) error {
	c, err := paradigm.ParseConjugation(conjugation)
	if err != nil {
		return err
	}
	flat := make(map[string]string)
	for k, v := range paradigm.DeriveParticiples(args[0], c, parts) {
		flat[string(k)] = v
	}
	if len(flat) == 0 {
		return fmt.Errorf("no participles for %q: %w", args[0], paradigm.ErrMissingData)
	}
	return printForms(cmd.OutOrStdout(), flat)
}

func runPronoun(cmd *cobra.Command, args []string) error {
	forms := paradigm.DeclinePronoun(args[0])
	if len(forms) == 0 {
		return fmt.Errorf("unknown pronoun %q", args[0])
	}
	return printForms(cmd.OutOrStdout(), forms.Strings())
}
