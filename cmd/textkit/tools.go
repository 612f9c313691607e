package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoMudEngine/textkit/internal/configs"
	"github.com/GoMudEngine/textkit/internal/language"
	"github.com/GoMudEngine/textkit/internal/util"
	"github.com/GoMudEngine/textkit/internal/volume"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTruncateCmd() *cobra.Command {
	var maxLen int
	var suffix string
	var words bool

	cmd := &cobra.Command{
		Use:   "truncate <text...>",
		Short: "Shorten text to a maximum length",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLen < 0 {
				return errors.New("--max must not be negative")
			}

			cfg := configs.Get().Truncate
			if !cmd.Flags().Changed("suffix") {
				suffix = cfg.SuffixString()
			}
			if !cmd.Flags().Changed("words") {
				words = bool(cfg.RespectWords)
			}

			text := strings.Join(args, " ")
			if words {
				fmt.Fprintln(cmd.OutOrStdout(), language.TruncateWords(text, maxLen, suffix))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), language.Truncate(text, maxLen, suffix))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxLen, "max", "m", 80, "maximum length in characters, suffix included")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", language.DEFAULT_TRUNCATE_SUFFIX, "appended when the text is cut")
	cmd.Flags().BoolVarP(&words, "words", "w", false, "cut at a word boundary when possible")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a random hex token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := util.Token(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", util.DEFAULT_TOKEN_LENGTH, "token length in characters")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template <template> [key=value...]",
		Short: "Fill {placeholders} in a template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make(map[string]string, len(args)-1)
			for _, pair := range args[1:] {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					return errors.New(`expected key=value, got "` + pair + `"`)
				}
				params[key] = value
			}
			fmt.Fprintln(cmd.OutOrStdout(), util.Moustaches(args[0], params))
			return nil
		},
	}
}

func newNormaliseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalise <text...>",
		Short: "Reduce text to a lowercase hyphenated key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), util.Normalise(strings.Join(args, " ")))
			return nil
		},
	}
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <separator> <pieces...>",
		Short: "Join pieces with a separator, trimming it from the edges of each piece",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), util.Join(args[0], args[1:]...))
			return nil
		},
	}
}

var solids = map[string]struct {
	dims      []string
	calculate func(d []float64) (float64, bool)
}{
	"cuboid":   {[]string{"height", "width", "depth"}, func(d []float64) (float64, bool) { return volume.Cuboid(d[0], d[1], d[2]) }},
	"cylinder": {[]string{"height", "radius"}, func(d []float64) (float64, bool) { return volume.Cylinder(d[0], d[1]) }},
	"sphere":   {[]string{"radius"}, func(d []float64) (float64, bool) { return volume.Sphere(d[0]) }},
	"hexprism": {[]string{"height", "edge"}, func(d []float64) (float64, bool) { return volume.HexagonalPrism(d[0], d[1]) }},
}

func newVolumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "volume <cuboid|cylinder|sphere|hexprism> <dimensions...>",
		Short:     "Calculate the volume of a solid",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"cuboid", "cylinder", "sphere", "hexprism"},
		RunE: func(cmd *cobra.Command, args []string) error {
			solid, ok := solids[args[0]]
			if !ok {
				return errors.New(`unknown solid "` + args[0] + `"`)
			}
			if len(args)-1 != len(solid.dims) {
				return errors.New(args[0] + " needs " + strings.Join(solid.dims, ", "))
			}

			dims := make([]float64, len(solid.dims))
			for i, raw := range args[1:] {
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return errors.Wrap(err, solid.dims[i])
				}
				dims[i] = f
			}

			v, ok := solid.calculate(dims)
			if !ok {
				return errors.New("a zero dimension has no volume")
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			return nil
		},
	}
}
