package main

import (
	"fmt"
	"strings"

	"github.com/GoMudEngine/textkit/internal/configs"
	"github.com/GoMudEngine/textkit/internal/language"
	"github.com/spf13/cobra"
)

func newPluralCmd(state *cliState) *cobra.Command {
	var count int
	var as string

	cmd := &cobra.Command{
		Use:   "plural <word>",
		Short: "Pluralize a noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), state.plural(args[0], count, as))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 2, "how many; a count of 1 leaves the word alone")
	cmd.Flags().StringVar(&as, "as", "", "explicit plural to use instead of the rules")
	return cmd
}

func newSingularCmd(state *cliState) *cobra.Command {
	var count int
	var as string

	cmd := &cobra.Command{
		Use:   "singular <word>",
		Short: "Singularize a noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), state.singular(args[0], count, as))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "how many; only a count of 1 transforms")
	cmd.Flags().StringVar(&as, "as", "", "explicit singular to use instead of the rules")
	return cmd
}

func newCaseCmd(state *cliState, name, short string) *cobra.Command {
	var allow string

	cmd := &cobra.Command{
		Use:   name + " <phrase...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert := state.caseConverter(name, allow, cmd.Flags().Changed("allow"))
			fmt.Fprintln(cmd.OutOrStdout(), convert(strings.Join(args, " ")))
			return nil
		},
	}

	cmd.Flags().StringVar(&allow, "allow", "", "extra characters to keep inside words")
	return cmd
}

// plural applies the --as flag first, then any configured override, then the rules.
func (s *cliState) plural(word string, count int, as string) string {
	if as != `` {
		return language.Pluralize(word, count, as)
	}
	if override, ok := configs.Get().Inflection.PluralOverride(word); ok {
		return language.Pluralize(word, count, override)
	}
	return language.Pluralize(word, count)
}

func (s *cliState) singular(word string, count int, as string) string {
	if as != `` {
		return language.Singularize(word, count, as)
	}
	if override, ok := configs.Get().Inflection.SingularOverride(word); ok {
		return language.Singularize(word, count, override)
	}
	return language.Singularize(word, count)
}

// caseConverter returns the named conversion. Without an explicit --allow the
// configured Casing.AllowedChars apply.
func (s *cliState) caseConverter(name, allow string, allowSet bool) func(string) string {
	allowed := configs.Get().Casing.AllowedRunes()
	if allowSet {
		allowed = []rune(allow)
	}

	switch name {
	case `pascal`:
		return func(p string) string { return language.ToPascal(p, allowed...) }
	case `camel`:
		return func(p string) string { return language.ToCamel(p, allowed...) }
	case `snake`:
		return func(p string) string { return language.ToSnake(p, allowed...) }
	}
	return nil
}
