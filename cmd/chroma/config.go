package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration chroma would use, after the search order
(--config, ~/.chroma/configs/chroma.yaml, ./configs/chroma.yaml, the
embedded defaults) and repairs of invalid values.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, source, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# source: %s\n", source)
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Long: `Write the default configuration to path, ~/.chroma/configs/chroma.yaml
by default. An existing file is kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := config.UserConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return errors.New("cannot resolve the home directory, pass a path")
		}

		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s exists, use --force to overwrite", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if err := config.Save(path, config.DefaultChromaConfig()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
