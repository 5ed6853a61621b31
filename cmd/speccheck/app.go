// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/speccheck/speccheck/internal/config"
	"github.com/speccheck/speccheck/internal/entangle"
)

type (
	// App wires CLI services and shared dependencies. Command handlers receive
	// an App reference instead of reaching for package-level state.
	App struct {
		Config ConfigProvider
		Loader entangle.Loader
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Loader entangle.Loader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Source(opts config.LoadOptions) (string, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Loader == nil {
		deps.Loader = entangle.FileLoader
	}

	return &App{
		Config: deps.Config,
		Loader: deps.Loader,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// newLogger returns a slog logger backed by charmbracelet/log on stderr.
// Verbose runs log at debug level; otherwise only warnings are shown.
func (a *App) newLogger(verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "speccheck",
		Level:  level,
	})
	return slog.New(handler)
}
