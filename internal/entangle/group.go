// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
)

// ErrInvalidGroup is the sentinel error wrapped by InvalidGroupError.
var ErrInvalidGroup = errors.New("invalid entanglement group")

type (
	// Group is an immutable set of descriptor paths, relative to the
	// repository root and slash-separated. Members are de-duplicated and
	// sorted, so groups with the same members are equal regardless of the
	// order they were declared in.
	Group struct {
		members []string
	}

	// InvalidGroupError is returned when a group has fewer than two distinct
	// members or a member path is unusable.
	InvalidGroupError struct {
		Members []string
		Reason  string
	}
)

// NewGroup builds a Group from member paths. Paths are cleaned; empty,
// absolute and root-escaping paths are rejected, and at least two distinct
// members are required.
func NewGroup(members ...string) (Group, error) {
	cleaned := make([]string, 0, len(members))
	for _, m := range members {
		m = strings.TrimSpace(strings.ReplaceAll(m, `\`, "/"))
		if m == "" {
			return Group{}, &InvalidGroupError{Members: members, Reason: "empty member path"}
		}
		if path.IsAbs(m) {
			return Group{}, &InvalidGroupError{Members: members, Reason: fmt.Sprintf("member %q must be relative to the repository root", m)}
		}
		m = path.Clean(m)
		if m == ".." || strings.HasPrefix(m, "../") {
			return Group{}, &InvalidGroupError{Members: members, Reason: fmt.Sprintf("member %q escapes the repository root", m)}
		}
		cleaned = append(cleaned, m)
	}

	slices.Sort(cleaned)
	cleaned = slices.Compact(cleaned)
	if len(cleaned) < 2 {
		return Group{}, &InvalidGroupError{Members: members, Reason: "a group needs at least two distinct members"}
	}

	return Group{members: cleaned}, nil
}

// MustGroup is NewGroup for static tables; it panics on invalid input.
func MustGroup(members ...string) Group {
	g, err := NewGroup(members...)
	if err != nil {
		panic(err)
	}
	return g
}

// Members returns the sorted member paths.
func (g Group) Members() []string { return slices.Clone(g.members) }

// Len returns the number of members.
func (g Group) Len() int { return len(g.members) }

// Contains reports whether p is a member.
func (g Group) Contains(p string) bool {
	_, found := slices.BinarySearch(g.members, path.Clean(p))
	return found
}

// Key identifies the member set; equal groups have equal keys.
func (g Group) Key() string { return strings.Join(g.members, "\n") }

// Equal reports whether both groups have the same members.
func (g Group) Equal(other Group) bool { return slices.Equal(g.members, other.members) }

// Validate reports whether g was built by NewGroup. The zero Group is invalid.
func (g Group) Validate() error {
	if len(g.members) < 2 {
		return &InvalidGroupError{Members: g.members, Reason: "a group needs at least two distinct members"}
	}
	return nil
}

// String renders the group as a bracketed member list.
func (g Group) String() string { return "[" + strings.Join(g.members, ", ") + "]" }

// Error implements the error interface.
func (e *InvalidGroupError) Error() string {
	return fmt.Sprintf("invalid entanglement group %v: %s", e.Members, e.Reason)
}

// Unwrap returns ErrInvalidGroup for errors.Is() compatibility.
func (e *InvalidGroupError) Unwrap() error { return ErrInvalidGroup }
