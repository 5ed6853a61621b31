// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"github.com/speccheck/speccheck/internal/issue"
	"github.com/speccheck/speccheck/pkg/rpmspec"
	"github.com/speccheck/speccheck/pkg/types"
)

type (
	// Loader loads one descriptor. path is absolute or relative to the
	// working directory.
	Loader interface {
		Load(path string) (*rpmspec.Spec, error)
	}

	// LoaderFunc adapts a function to the Loader interface.
	LoaderFunc func(path string) (*rpmspec.Spec, error)

	// ValueSet is the set of distinct values seen for one field.
	ValueSet map[string]struct{}

	// FieldValues maps each required field to the values seen across a group.
	FieldValues map[Field]ValueSet

	// Collector gathers field values across the members of a group.
	Collector struct {
		loader Loader
		logger *slog.Logger
	}

	// CollectorOption configures a Collector.
	CollectorOption func(*Collector)
)

// FileLoader parses descriptors from disk with rpmspec.ParseFile.
var FileLoader Loader = LoaderFunc(rpmspec.ParseFile)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (*rpmspec.Spec, error) { return f(path) }

// Add records v.
func (s ValueSet) Add(v string) { s[v] = struct{}{} }

// Len returns the number of distinct values.
func (s ValueSet) Len() int { return len(s) }

// Sorted returns the values in lexical order.
func (s ValueSet) Sorted() []string { return slices.Sorted(maps.Keys(s)) }

// WithLoader replaces FileLoader.
func WithLoader(l Loader) CollectorOption {
	return func(c *Collector) { c.loader = l }
}

// WithLogger sets the logger used for per-descriptor debug output.
func WithLogger(l *slog.Logger) CollectorOption {
	return func(c *Collector) { c.logger = l }
}

// NewCollector returns a Collector reading descriptors with FileLoader
// unless overridden.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{loader: FileLoader, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect loads every member of g below root and returns the distinct
// values of each field. The first load or field error aborts collection.
func (c *Collector) Collect(ctx context.Context, root types.RepoRoot, g Group, fields []Field) (FieldValues, error) {
	values := make(FieldValues, len(fields))
	for _, f := range fields {
		values[f] = make(ValueSet)
	}

	for _, member := range g.members {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collect %s canceled: %w", g, err)
		}

		specPath := root.Join(member)
		c.logger.Debug("loading descriptor", "path", member)

		spec, err := c.loader.Load(specPath)
		if err != nil {
			return nil, loadError(member, specPath, err)
		}

		for _, f := range fields {
			v, err := f.Value(spec)
			if err != nil {
				return nil, issue.NewErrorContext().
					WithOperation("read descriptor field " + f.String()).
					WithResource(member).
					WithSuggestion("Add the missing tag to the descriptor preamble").
					WithIssue(issue.DescriptorParseErrorID).
					Wrap(err).
					BuildError()
			}
			values[f].Add(v)
		}
	}

	return values, nil
}

func loadError(member, specPath string, err error) error {
	ec := issue.NewErrorContext().
		WithOperation("load descriptor").
		WithResource(member).
		Wrap(err)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		ec.WithIssue(issue.DescriptorNotFoundID).
			WithSuggestion(fmt.Sprintf("Check that %s exists", specPath)).
			WithSuggestion("Verify the repository root argument points at the repository checkout").
			WithSuggestion("If the package was renamed or removed, update the entanglement rules")
	case errors.Is(err, rpmspec.ErrMalformedSpec):
		ec.WithIssue(issue.DescriptorParseErrorID).
			WithSuggestion("Make sure the preamble declares Name, Version and Release tags").
			WithSuggestion("Check %define/%global macros used by the tags for typos or recursion")
	default:
		ec.WithSuggestion("Check that the file is readable")
	}

	return ec.BuildError()
}
