// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"errors"
	"fmt"
)

const (
	// CategoryVersion groups must share the Version tag; Release may differ.
	CategoryVersion Category = iota + 1
	// CategoryVersionRelease groups must share both Version and Release.
	CategoryVersionRelease
)

// ErrUnknownCategory is returned for a Category outside the known set.
var ErrUnknownCategory = errors.New("unknown rule category")

type (
	// Category is a kind of entanglement rule. It fixes which fields must
	// match and how violations are described.
	Category int

	// Rule declares that the members of Group must agree on every field of
	// Category.
	Rule struct {
		Category Category
		Group    Group
	}

	// Registry is an ordered, read-only list of rules.
	Registry struct {
		rules []Rule
	}
)

// Categories returns the known categories in check and report order.
func Categories() []Category {
	return []Category{CategoryVersion, CategoryVersionRelease}
}

// Fields returns the fields that must match under c.
func (c Category) Fields() []Field {
	switch c {
	case CategoryVersion:
		return []Field{FieldVersion}
	case CategoryVersionRelease:
		return []Field{FieldVersion, FieldRelease}
	default:
		return nil
	}
}

// String returns the short category name used in rule listings.
func (c Category) String() string {
	switch c {
	case CategoryVersion:
		return "version"
	case CategoryVersionRelease:
		return "version+release"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Instruction is the report line introducing the violations of c.
func (c Category) Instruction() string {
	switch c {
	case CategoryVersion:
		return "Please update the following sets of specs to have the same Version tags:"
	case CategoryVersionRelease:
		return "Please update the following sets of specs to have the same Version and Release tags:"
	default:
		return fmt.Sprintf("Please update the following sets of specs to have matching %s tags:", c)
	}
}

// Validate returns ErrUnknownCategory for values outside the known set.
func (c Category) Validate() error {
	if c != CategoryVersion && c != CategoryVersionRelease {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return nil
}

// NewRegistry validates rules and returns a Registry holding them.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{rules: append([]Rule(nil), rules...)}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRegistry returns the built-in entanglement table. Each call builds
// a fresh Registry.
func DefaultRegistry() *Registry {
	rules := make([]Rule, 0, len(defaultVersionGroups)+len(defaultVersionReleaseGroups))
	for _, members := range defaultVersionGroups {
		rules = append(rules, Rule{Category: CategoryVersion, Group: MustGroup(members...)})
	}
	for _, members := range defaultVersionReleaseGroups {
		rules = append(rules, Rule{Category: CategoryVersionRelease, Group: MustGroup(members...)})
	}
	return &Registry{rules: rules}
}

// Rules returns a copy of all rules in declaration order.
func (r *Registry) Rules() []Rule { return append([]Rule(nil), r.rules...) }

// Groups returns the groups declared under c, in declaration order.
func (r *Registry) Groups(c Category) []Group {
	var groups []Group
	for _, rule := range r.rules {
		if rule.Category == c {
			groups = append(groups, rule.Group)
		}
	}
	return groups
}

// Len returns the number of rules.
func (r *Registry) Len() int { return len(r.rules) }

// Validate checks every rule's category, group, and required fields.
func (r *Registry) Validate() error {
	var errs []error
	for i, rule := range r.rules {
		if err := rule.Category.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		if err := rule.Group.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
		}
		for _, f := range rule.Category.Fields() {
			if err := f.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}
