// SPDX-License-Identifier: MPL-2.0

package rpmspec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSpec is the sentinel error wrapped by MalformedSpecError.
	ErrMalformedSpec = errors.New("malformed spec file")
	// ErrMissingTag is the sentinel error wrapped by MissingTagError.
	ErrMissingTag = errors.New("missing tag")
)

type (
	// MalformedSpecError is returned when a descriptor cannot be interpreted.
	// Line is 1-based; zero means the problem is not tied to one line.
	MalformedSpecError struct {
		File   string
		Line   int
		Reason string
	}

	// MissingTagError is returned when a tag is requested that the
	// descriptor preamble does not define.
	MissingTagError struct {
		File string
		Tag  string
	}
)

// Error implements the error interface.
func (e *MalformedSpecError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Reason)
}

// Unwrap returns ErrMalformedSpec for errors.Is() compatibility.
func (e *MalformedSpecError) Unwrap() error { return ErrMalformedSpec }

// Error implements the error interface.
func (e *MissingTagError) Error() string {
	return fmt.Sprintf("%s: no %s tag in preamble", e.File, e.Tag)
}

// Unwrap returns ErrMissingTag for errors.Is() compatibility.
func (e *MissingTagError) Unwrap() error { return ErrMissingTag }
