package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// config is the optional --config file. Missing keys keep their
// defaults.
type config struct {
	FPS        int    `toml:"fps"`
	Border     string `toml:"border"`
	Background string `toml:"background"`
}

func defaultConfig() config {
	return config{FPS: 30, Border: "#", Background: "."}
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	var (
		verbose    bool
		configPath string
		cfg        = defaultConfig()
		logger     = charmlog.New(os.Stderr)
	)

	root := &cobra.Command{
		Use:          "textyle",
		Short:        "demos for the textyle layout engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
			if configPath != "" {
				if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				logger.Debug("config loaded", "path", configPath, "fps", cfg.FPS)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a toml config file")

	root.AddCommand(newSceneCmd(&cfg, logger))
	root.AddCommand(newClockCmd(&cfg, logger))
	root.AddCommand(newGridCmd(&cfg, logger))
	root.AddCommand(newTeaCmd(logger))

	return root.Execute()
}
