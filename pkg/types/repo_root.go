// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidRepoRoot is the sentinel error wrapped by InvalidRepoRootError.
var ErrInvalidRepoRoot = errors.New("invalid repository root")

type (
	// RepoRoot is the filesystem path of the repository holding the
	// package-build descriptors. Group members are resolved relative to it.
	RepoRoot string

	// InvalidRepoRootError is returned when a RepoRoot is blank, missing,
	// or not a directory.
	InvalidRepoRootError struct {
		Value  RepoRoot
		Reason string
		Cause  error
	}
)

// String returns the string representation of the RepoRoot.
func (r RepoRoot) String() string { return string(r) }

// Validate rejects empty and whitespace-only paths. It performs no I/O.
func (r RepoRoot) Validate() error {
	if strings.TrimSpace(string(r)) == "" {
		return &InvalidRepoRootError{Value: r, Reason: "must be non-empty"}
	}
	return nil
}

// Resolve validates the path, makes it absolute and checks that it names
// an existing directory.
func (r RepoRoot) Resolve() (RepoRoot, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(string(r))
	if err != nil {
		return "", &InvalidRepoRootError{Value: r, Reason: "cannot be made absolute", Cause: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", &InvalidRepoRootError{Value: r, Reason: "does not exist", Cause: err}
	}
	if !info.IsDir() {
		return "", &InvalidRepoRootError{Value: r, Reason: "is not a directory"}
	}

	return RepoRoot(abs), nil
}

// Join returns the path of a slash-separated member below the root.
func (r RepoRoot) Join(member string) string {
	return filepath.Join(string(r), filepath.FromSlash(member))
}

// Error implements the error interface for InvalidRepoRootError.
func (e *InvalidRepoRootError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid repository root %q: %s: %v", e.Value, e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid repository root %q: %s", e.Value, e.Reason)
}

// Is reports ErrInvalidRepoRoot so callers can use errors.Is.
func (e *InvalidRepoRootError) Is(target error) bool { return target == ErrInvalidRepoRoot }

// Unwrap returns the underlying filesystem error, if any.
func (e *InvalidRepoRootError) Unwrap() error { return e.Cause }
