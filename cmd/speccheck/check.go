// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/speccheck/speccheck/internal/config"
	"github.com/speccheck/speccheck/internal/entangle"
	"github.com/speccheck/speccheck/internal/issue"
	"github.com/speccheck/speccheck/pkg/types"
)

// runCheck checks the repository at rootArg and prints the report to stdout.
// Violations return an ExitError with ExitViolation once the report is out.
func runCheck(ctx context.Context, app *App, flags *rootFlags, rootArg string) error {
	cfg, err := loadConfig(ctx, app, flags)
	if err != nil {
		return err
	}

	logger := app.newLogger(flags.verbose)

	root, err := types.RepoRoot(rootArg).Resolve()
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("resolve repository root").
			WithResource(rootArg).
			WithSuggestion("Pass the path of the repository checkout (the directory containing SPECS/)").
			WithIssue(issue.RepoRootNotFoundID).
			Wrap(err).
			BuildError()
	}

	registry, err := loadRegistry(flags, cfg)
	if err != nil {
		return err
	}
	logger.Debug("checking repository", "root", root.String(), "rules", registry.Len())

	collector := entangle.NewCollector(
		entangle.WithLoader(app.Loader),
		entangle.WithLogger(logger),
	)
	res, err := entangle.NewChecker(registry, collector).Run(ctx, root)
	if err != nil {
		return err
	}

	if err := newReporter(flags.verbose).Report(app.stdout, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !res.HasViolations() {
		logger.Debug("all entanglement rules hold")
		return nil
	}

	for _, cat := range entangle.Categories() {
		for _, v := range res.Violations(cat) {
			logger.Debug("violation", "violation", v)
		}
	}
	if flags.verbose {
		renderIssue(app.stderr, issue.EntanglementViolationID, flags.colorScheme.GlamourStyle())
	}

	return &ExitError{Code: res.ExitCode()}
}

// loadRegistry picks the rule source: --rules, then rules_file from the
// config, then the built-in table.
func loadRegistry(flags *rootFlags, cfg *config.Config) (*entangle.Registry, error) {
	path := flags.rulesPath
	if path == "" {
		path = cfg.RulesFile
	}
	if path == "" {
		return entangle.DefaultRegistry(), nil
	}

	registry, err := entangle.LoadRegistryFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load rule file").
			WithResource(path).
			WithSuggestion("Check that the file exists and contains valid CUE").
			WithSuggestion("Each group must list at least two distinct paths relative to the repository root").
			WithIssue(issue.RuleFileInvalidID).
			Wrap(err).
			BuildError()
	}
	return registry, nil
}
