// SPDX-License-Identifier: MPL-2.0

package entangle

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/speccheck/speccheck/pkg/types"
)

// writeSpec creates a minimal descriptor at root/rel.
func writeSpec(t *testing.T, root, rel, version, release string) {
	t.Helper()

	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := fmt.Sprintf("Summary: test\nName: %s\nVersion: %s\nRelease: %s\n\n%%description\ntest\n",
		filepath.Base(filepath.Dir(p)), version, release)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// writeRaw writes content verbatim at root/rel.
func writeRaw(t *testing.T, root, rel, content string) {
	t.Helper()

	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func testRoot(t *testing.T) (string, types.RepoRoot) {
	t.Helper()
	dir := t.TempDir()
	return dir, types.RepoRoot(dir)
}
