package main

import (
	"os"

	"github.com/GoMudEngine/textkit/internal/applog"
	"github.com/GoMudEngine/textkit/internal/configs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	err := newRootCmd().Execute()
	applog.Close()
	if err != nil {
		os.Exit(1)
	}
}

// cliState is shared by every subcommand of one root command. The loaded
// configuration itself is read back through configs.Get.
type cliState struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "English text morphology: plurals, casing and truncation",
		Long: `textkit converts nouns between singular and plural, converts phrases
between PascalCase, camelCase and snake_case, and truncates text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "config file (yaml or json)")
	rootCmd.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newPluralCmd(state),
		newSingularCmd(state),
		newCaseCmd(state, "pascal", "Convert a phrase to PascalCase"),
		newCaseCmd(state, "camel", "Convert a phrase to camelCase"),
		newCaseCmd(state, "snake", "Convert a phrase to snake_case"),
		newTruncateCmd(),
		newTokenCmd(),
		newTemplateCmd(),
		newNormaliseCmd(),
		newJoinCmd(),
		newVolumeCmd(),
		newBatchCmd(state),
		newConfigCmd(),
	)

	return rootCmd
}

func (s *cliState) init() error {
	cfg, err := configs.Load(s.cfgFile)
	if err != nil {
		return errors.Wrap(err, "config")
	}

	level := cfg.Logging.Level.String()
	if s.verbose {
		level = `debug`
	}

	applog.Setup(applog.Options{
		Level:      level,
		Format:     cfg.Logging.Format.String(),
		File:       cfg.Logging.File.String(),
		MaxSizeMB:  int(cfg.Logging.MaxSizeMB),
		MaxBackups: int(cfg.Logging.MaxBackups),
	})

	applog.Debug("textkit starting", "config", s.cfgFile)
	return nil
}
