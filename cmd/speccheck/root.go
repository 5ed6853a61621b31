// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/speccheck/speccheck/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags. verbose also absorbs ui.verbose
// from the configuration once it is loaded.
type rootFlags struct {
	configPath  string
	rulesPath   string
	verbose     bool
	colorScheme config.ColorScheme
}

func newRootCommand(app *App, flags *rootFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   "speccheck <repo_root>",
		Short: "Check that entangled package specs are bumped together",
		Long: TitleStyle.Render("speccheck") + SubtitleStyle.Render(" - keep entangled package specs in lockstep") + `

Some packages are built from the same sources as others: signed kernel
variants, bootloader binaries, certificate bundles. Their spec files must
carry the same Version (and often the same Release) at all times.

speccheck reads every spec listed in the entanglement rules below
<repo_root> and reports groups whose tags have drifted apart.

` + SubtitleStyle.Render("Exit status:") + `
  0  every rule holds
  1  at least one group violates its rule
  2  the check could not run (bad path, unreadable spec, invalid config)

` + SubtitleStyle.Render("Examples:") + `
  speccheck .                       Check the current checkout
  speccheck -v /src/distro          Also print the diverging values
  speccheck --rules rules.cue .     Check against a custom rule file
  speccheck rules                   List the active rules

A repository root named like a subcommand ("rules", "config") must be
written as a path, for example: speccheck ./rules`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), app, flags, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/speccheck/config.cue)")
	pf.StringVar(&flags.rulesPath, "rules", "", "CUE rule file replacing the built-in entanglement rules")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "print diverging values, debug logs and error chains")

	root.AddCommand(newRulesCommand(app, flags))
	root.AddCommand(newConfigCommand(app, flags))

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// run executes the command tree with args and returns the exit status.
func run(ctx context.Context, app *App, args []string) int {
	flags := &rootFlags{}
	root := newRootCommand(app, flags)
	root.SetArgs(args)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler(flags)),
	)
	return int(exitCodeFor(err))
}

// Main runs speccheck with the process arguments and returns the exit status.
func Main() int {
	app := NewApp(Dependencies{})
	slog.SetDefault(app.newLogger(false))
	return run(context.Background(), app, os.Args[1:])
}

// Execute is called by main.main().
func Execute() {
	os.Exit(Main())
}

// loadConfig loads configuration for flags and folds ui.verbose into the
// verbose flag.
func loadConfig(ctx context.Context, app *App, flags *rootFlags) (*config.Config, error) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, err
	}
	if cfg.UI.Verbose {
		flags.verbose = true
	}
	flags.colorScheme = cfg.UI.ColorScheme
	applyColorScheme(cfg.UI.ColorScheme)
	return cfg, nil
}
