// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRoot_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		root    RepoRoot
		wantErr bool
	}{
		{"absolute path", RepoRoot("/srv/repo"), false},
		{"relative path", RepoRoot("repo"), false},
		{"dot path", RepoRoot("."), false},
		{"empty is invalid", RepoRoot(""), true},
		{"whitespace only is invalid", RepoRoot("  \t "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.root.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("RepoRoot(%q).Validate() error = %v, wantErr %v", tt.root, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidRepoRoot) {
				t.Errorf("error should match ErrInvalidRepoRoot, got: %v", err)
			}
		})
	}
}

func TestRepoRoot_Resolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "kernel.spec")
	if err := os.WriteFile(file, []byte("Name: kernel\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("existing directory", func(t *testing.T) {
		t.Parallel()
		got, err := RepoRoot(dir).Resolve()
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !filepath.IsAbs(string(got)) {
			t.Errorf("Resolve() = %q, want absolute path", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := RepoRoot(filepath.Join(dir, "nope")).Resolve()
		if !errors.Is(err, ErrInvalidRepoRoot) {
			t.Fatalf("Resolve() error = %v, want ErrInvalidRepoRoot", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Resolve() error should wrap fs.ErrNotExist, got: %v", err)
		}
	})

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()
		_, err := RepoRoot(file).Resolve()
		var rootErr *InvalidRepoRootError
		if !errors.As(err, &rootErr) {
			t.Fatalf("Resolve() error = %v, want *InvalidRepoRootError", err)
		}
		if rootErr.Reason != "is not a directory" {
			t.Errorf("Reason = %q, want %q", rootErr.Reason, "is not a directory")
		}
	})
}

func TestRepoRoot_Join(t *testing.T) {
	t.Parallel()

	got := RepoRoot("/repo").Join("SPECS/kernel/kernel.spec")
	want := filepath.Join("/repo", "SPECS", "kernel", "kernel.spec")
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}
