// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"errors"
	"fmt"

	"github.com/speccheck/speccheck/pkg/rpmspec"
)

const (
	// FieldName is the package Name tag.
	FieldName Field = "name"
	// FieldEpoch is the Epoch tag. A missing Epoch reads as "".
	FieldEpoch Field = "epoch"
	// FieldVersion is the upstream Version tag.
	FieldVersion Field = "version"
	// FieldRelease is the packaging Release tag.
	FieldRelease Field = "release"
)

// ErrUnknownField is the sentinel error wrapped by UnknownFieldError.
var ErrUnknownField = errors.New("unknown descriptor field")

type (
	// Field names a descriptor value a rule can require to match.
	// The set is closed: only the constants above are valid.
	Field string

	// UnknownFieldError is returned for a Field outside the closed set.
	UnknownFieldError struct {
		Value Field
	}
)

// Fields returns every known field.
func Fields() []Field {
	return []Field{FieldName, FieldEpoch, FieldVersion, FieldRelease}
}

// ParseField converts a field name to a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// String returns the field name.
func (f Field) String() string { return string(f) }

// Validate returns an UnknownFieldError for fields outside the closed set.
func (f Field) Validate() error {
	switch f {
	case FieldName, FieldEpoch, FieldVersion, FieldRelease:
		return nil
	default:
		return &UnknownFieldError{Value: f}
	}
}

// Value reads the field from a parsed descriptor as written in the preamble.
// Macros are left unexpanded so that "3%{?dist}" and "3" count as different
// releases. Name, Version and Release must be present.
func (f Field) Value(spec *rpmspec.Spec) (string, error) {
	switch f {
	case FieldName:
		return rawLookup(spec, rpmspec.TagName)
	case FieldEpoch:
		v, _ := spec.RawTag(rpmspec.TagEpoch)
		return v, nil
	case FieldVersion:
		return rawLookup(spec, rpmspec.TagVersion)
	case FieldRelease:
		return rawLookup(spec, rpmspec.TagRelease)
	default:
		return "", &UnknownFieldError{Value: f}
	}
}

func rawLookup(spec *rpmspec.Spec, tag string) (string, error) {
	v, ok := spec.RawTag(tag)
	if !ok {
		return "", &rpmspec.MissingTagError{File: spec.FilePath, Tag: tag}
	}
	return v, nil
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown descriptor field %q (expected one of %v)", string(e.Value), Fields())
}

// Unwrap returns ErrUnknownField for errors.Is() compatibility.
func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }
