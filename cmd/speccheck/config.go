// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/speccheck/speccheck/internal/config"
)

// newConfigCommand creates the `speccheck config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect speccheck configuration",
		Long: `Inspect speccheck configuration.

Configuration is read from the first of:
  - the --config file
  - Linux: ~/.config/speccheck/config.cue
    macOS: ~/Library/Application Support/speccheck/config.cue
    Windows: %APPDATA%\speccheck\config.cue
  - ./speccheck.cue

Every key can be overridden with SPECCHECK_* environment variables, for
example SPECCHECK_UI_VERBOSE=true or SPECCHECK_RULES_FILE=rules.cue.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			source, err := app.Config.Source(config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return err
			}
			return showConfig(app.stdout, cfg, source)
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, source string) error {
	if source == "" {
		source = "(using defaults)"
	}
	if _, err := fmt.Fprintf(w, "// source: %s\n", source); err != nil {
		return err
	}
	_, err := io.WriteString(w, config.GenerateCUE(cfg))
	return err
}
