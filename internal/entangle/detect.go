// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/speccheck/speccheck/pkg/types"
)

// Violation is a group whose members disagree on at least one field
// required by Category.
type Violation struct {
	Category Category
	Group    Group
	// Values holds the distinct values seen per required field.
	Values FieldValues
}

// Diverges reports whether any of fields has more than one distinct value.
// A single diverging field is enough.
func Diverges(values FieldValues, fields []Field) bool {
	for _, f := range fields {
		if values[f].Len() > 1 {
			return true
		}
	}
	return false
}

// DivergentFields returns the required fields with more than one value,
// in the category's field order.
func (v Violation) DivergentFields() []Field {
	var out []Field
	for _, f := range v.Category.Fields() {
		if v.Values[f].Len() > 1 {
			out = append(out, f)
		}
	}
	return out
}

// Detect checks every group under category c and returns the violating ones,
// sorted by member list. Each distinct group is checked and reported once.
func (c *Collector) Detect(ctx context.Context, root types.RepoRoot, cat Category, groups []Group) ([]Violation, error) {
	fields := cat.Fields()
	seen := make(map[string]bool, len(groups))

	var violations []Violation
	for _, g := range groups {
		key := g.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		values, err := c.Collect(ctx, root, g, fields)
		if err != nil {
			return nil, err
		}
		if Diverges(values, fields) {
			c.logger.Debug("group diverges", "category", cat.String(), "group", g.String())
			violations = append(violations, Violation{Category: cat, Group: g, Values: values})
		}
	}

	slices.SortFunc(violations, func(a, b Violation) int {
		return strings.Compare(a.Group.Key(), b.Group.Key())
	})
	return violations, nil
}

// LogValue renders v for structured logs.
func (v Violation) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("category", v.Category.String()),
		slog.String("group", v.Group.String()),
	}
	for _, f := range v.DivergentFields() {
		attrs = append(attrs, slog.Any(f.String(), v.Values[f].Sorted()))
	}
	return slog.GroupValue(attrs...)
}
