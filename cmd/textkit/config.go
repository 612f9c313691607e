package main

import (
	"fmt"
	"os"

	"github.com/GoMudEngine/textkit/internal/applog"
	"github.com/GoMudEngine/textkit/internal/configs"
	"github.com/GoMudEngine/textkit/internal/fileloader"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = `textkit.yaml`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file or directory]",
		Short: "Write a config file holding every default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) > 0 {
				path = args[0]
			}
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				path = fileloader.Join(path, defaultConfigFile)
			}

			if err := writeDefaultConfig(path, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file, keeping a .bak copy")
	return cmd
}

// writeDefaultConfig saves configs.Default() to path. An existing file is only
// replaced with force, and is first copied to path.bak.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return errors.New(path + " already exists, use --force to replace it")
		}
		if !fileloader.Copy(path, path+`.bak`) {
			return errors.New("could not back up " + path)
		}
	}

	// left behind by an interrupted careful save
	tempPath := path + `.tmp`
	if _, err := os.Stat(tempPath); err == nil {
		fileloader.Remove(tempPath)
	}

	if err := fileloader.SaveFlatFile(path, configs.Default(), fileloader.SaveCareful); err != nil {
		return errors.Wrap(err, "writing config")
	}

	applog.Info("Config written", "path", path, "replaced", force)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect, after env overrides and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configs.Get()
			out, err := yaml.Marshal(&cfg)
			if err != nil {
				return errors.Wrap(err, "encoding config")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
