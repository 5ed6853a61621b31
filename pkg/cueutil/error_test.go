// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "rules.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		original := errors.New("some error")
		err := FormatError(original, "rules.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.HasPrefix(err.Error(), "rules.cue: ") {
			t.Errorf("error should start with filepath, got: %v", err)
		}
		if !errors.Is(err, original) {
			t.Errorf("error should wrap the original, got: %v", err)
		}
	})

	t.Run("CUE error is reformatted", func(t *testing.T) {
		t.Parallel()

		err := FormatError(cueerrors.Newf(token.NoPos, "conflicting values"), "rules.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if got, want := err.Error(), "rules.cue: conflicting values"; got != want {
			t.Errorf("FormatError() = %q, want %q", got, want)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty path", nil, ""},
		{"single element", []string{"rules_file"}, "rules_file"},
		{"nested field", []string{"ui", "color_scheme"}, "ui.color_scheme"},
		{"list index", []string{"version_groups", "0"}, "version_groups[0]"},
		{"nested list index", []string{"version_groups", "2", "1"}, "version_groups[2][1]"},
		{"leading number is not an index", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "a.cue"); err != nil {
		t.Errorf("size at limit should pass, got %v", err)
	}

	err := CheckFileSize(make([]byte, 11), 10, "a.cue")
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") || !strings.Contains(err.Error(), "a.cue") {
		t.Errorf("unexpected error message: %v", err)
	}
}
