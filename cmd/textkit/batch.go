package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GoMudEngine/textkit/internal/applog"
	"github.com/GoMudEngine/textkit/internal/collection"
	"github.com/GoMudEngine/textkit/internal/configs"
	"github.com/GoMudEngine/textkit/internal/fileloader"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var batchOps = []string{"plural", "singular", "pascal", "camel", "snake"}

// batchConverter memoizes one conversion. The engines are pure, so a cached result
// is always the same as a fresh one.
type batchConverter struct {
	convert func(string) string
	cache   *lru.Cache[string, string]
	hits    int
	misses  int
}

func newBatchConverter(convert func(string) string, size int) (*batchConverter, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.Wrap(err, "creating batch cache")
	}
	return &batchConverter{convert: convert, cache: cache}, nil
}

func (b *batchConverter) Convert(in string) string {
	if out, ok := b.cache.Get(in); ok {
		b.hits++
		return out
	}
	b.misses++
	out := b.convert(in)
	b.cache.Add(in, out)
	return out
}

func (s *cliState) batchFunc(op string, count int) (func(string) string, error) {
	switch op {
	case `plural`:
		return func(w string) string { return s.plural(w, count, ``) }, nil
	case `singular`:
		return func(w string) string { return s.singular(w, count, ``) }, nil
	case `pascal`, `camel`, `snake`:
		return s.caseConverter(op, ``, false), nil
	}
	return nil, errors.New(`unknown batch operation "` + op + `", expected one of ` + strings.Join(batchOps, ", "))
}

func newBatchCmd(state *cliState) *cobra.Command {
	var count int
	var file string
	var unique bool

	cmd := &cobra.Command{
		Use:       "batch <" + strings.Join(batchOps, "|") + ">",
		Short:     "Convert every line read from stdin or a file",
		Long:      "Reads one word or phrase per line and prints the input and the converted form in aligned columns.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: batchOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			if !cmd.Flags().Changed("count") && op == `plural` {
				count = 2
			}

			convert, err := state.batchFunc(op, count)
			if err != nil {
				return err
			}

			converter, err := newBatchConverter(convert, int(configs.Get().Batch.CacheSize))
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file != `` {
				f, err := os.Open(file)
				if err != nil {
					return errors.Wrap(err, "batch input")
				}
				defer f.Close()
				applog.ForComponent("batch").Debug("reading batch file", "path", fileloader.FilenameFromFile(f))
				in = f
			}

			// Rows are keyed by input when unique, otherwise by line number.
			rows := collection.Collection[string, [2]string]{}
			width := 0
			lineNo := 0

			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == `` {
					continue
				}
				lineNo++

				key := line
				if !unique {
					key = fmt.Sprint(lineNo)
				} else if _, seen := rows.At(key); seen {
					continue
				}

				rows.Add(key, [2]string{line, converter.Convert(line)})
				width = max(width, runewidth.StringWidth(line))
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "reading batch input")
			}

			out := cmd.OutOrStdout()
			for _, row := range rows.All() {
				fmt.Fprintln(out, runewidth.FillRight(row[0], width)+"  "+row[1])
			}

			applog.ForComponent("batch").Debug("batch done", "op", op, "lines", lineNo, "rows", rows.Len(), "cacheHits", converter.hits, "cacheMisses", converter.misses)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 1, "count passed to plural/singular (plural defaults to 2)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read lines from this file instead of stdin")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "print each distinct line once, in first seen order")
	return cmd
}
