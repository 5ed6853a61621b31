// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"context"
	"fmt"

	"github.com/speccheck/speccheck/pkg/types"
)

type (
	// Checker runs every category of a Registry against a repository.
	Checker struct {
		registry  *Registry
		collector *Collector
	}

	// Result holds the violations of one check run, kept per category.
	Result struct {
		violations map[Category][]Violation
	}
)

// NewChecker returns a Checker for registry. A nil collector means
// NewCollector().
func NewChecker(registry *Registry, collector *Collector) *Checker {
	if collector == nil {
		collector = NewCollector()
	}
	return &Checker{registry: registry, collector: collector}
}

// Run checks CategoryVersion groups, then CategoryVersionRelease groups.
// Violations never stop the run; the first load error does.
func (c *Checker) Run(ctx context.Context, root types.RepoRoot) (*Result, error) {
	if err := c.registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule registry: %w", err)
	}

	res := &Result{violations: make(map[Category][]Violation)}
	for _, cat := range Categories() {
		violations, err := c.collector.Detect(ctx, root, cat, c.registry.Groups(cat))
		if err != nil {
			return nil, err
		}
		if len(violations) > 0 {
			res.violations[cat] = violations
		}
	}
	return res, nil
}

// NewResult builds a Result from violations, grouping them by category.
func NewResult(violations ...Violation) *Result {
	res := &Result{violations: make(map[Category][]Violation)}
	for _, v := range violations {
		res.violations[v.Category] = append(res.violations[v.Category], v)
	}
	return res
}

// Violations returns the violations found under cat.
func (r *Result) Violations(cat Category) []Violation {
	return append([]Violation(nil), r.violations[cat]...)
}

// HasViolations reports whether any category has a violation.
func (r *Result) HasViolations() bool { return r.Count() > 0 }

// Count returns the total number of violations across categories.
func (r *Result) Count() int {
	n := 0
	for _, vs := range r.violations {
		n += len(vs)
	}
	return n
}

// ExitCode maps the result to the process exit status.
func (r *Result) ExitCode() types.ExitCode {
	if r.HasViolations() {
		return types.ExitViolation
	}
	return types.ExitSuccess
}
