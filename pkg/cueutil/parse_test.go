// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Path: string & !=""
#Group: [#Path, #Path, ...#Path]
#TestRules: {
	label:   string
	strict?: bool
	groups: [...#Group]
}
`

type testRules struct {
	Label  string     `json:"label"`
	Strict bool       `json:"strict,omitempty"`
	Groups [][]string `json:"groups"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
label: "kernel"
groups: [["a.spec", "b.spec"], ["c.spec", "d.spec", "e.spec"]]
`)
		result, err := ParseAndDecode[testRules](testSchema, data, "#TestRules")
		if err != nil {
			t.Fatalf("ParseAndDecode failed: %v", err)
		}
		if result.Value.Label != "kernel" {
			t.Errorf("Label = %q, want %q", result.Value.Label, "kernel")
		}
		if len(result.Value.Groups) != 2 || len(result.Value.Groups[1]) != 3 {
			t.Errorf("Groups = %v, want 2 groups with 2 and 3 members", result.Value.Groups)
		}
		if result.Value.Strict {
			t.Error("omitted optional field should decode to zero value")
		}
	})

	t.Run("group of one is rejected by schema", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
label: "x"
groups: [["only.spec"]]
`)
		_, err := ParseAndDecode[testRules](testSchema, data, "#TestRules", WithFilename("rules.cue"))
		if err == nil {
			t.Fatal("expected error for single-member group")
		}
		if !strings.Contains(err.Error(), "rules.cue") {
			t.Errorf("error should name the file, got: %v", err)
		}
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
label: "x"
groups: [["a.spec", ""]]
`)
		if _, err := ParseAndDecode[testRules](testSchema, data, "#TestRules"); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("syntax error is reported", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testRules](testSchema, []byte(`label: "x`), "#TestRules", WithFilename("bad.cue"))
		if err == nil {
			t.Fatal("expected syntax error")
		}
		if !strings.HasPrefix(err.Error(), "bad.cue") {
			t.Errorf("error should start with file name, got: %v", err)
		}
	})

	t.Run("missing definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testRules](testSchema, []byte(`label: "x"`), "#Nope")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("expected internal error, got: %v", err)
		}
	})

	t.Run("size limit is enforced", func(t *testing.T) {
		t.Parallel()

		data := []byte(`label: "` + strings.Repeat("a", 200) + `"`)
		_, err := ParseAndDecode[testRules](testSchema, data, "#TestRules", WithMaxFileSize(100))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("expected size error, got: %v", err)
		}
	})
}

func TestDecodeMap(t *testing.T) {
	t.Parallel()

	const schema = `
#Settings: {
	rules_file?: string
	ui?: {
		verbose?: bool
	}
}
`

	m, err := DecodeMap(schema, []byte(`ui: verbose: true`), "#Settings", WithConcrete(false))
	if err != nil {
		t.Fatalf("DecodeMap failed: %v", err)
	}
	ui, ok := m["ui"].(map[string]any)
	if !ok || ui["verbose"] != true {
		t.Errorf("ui = %v, want map with verbose=true", m["ui"])
	}
	if _, ok := m["rules_file"]; ok {
		t.Error("omitted optional field should not appear in the map")
	}

	_, err = DecodeMap(schema, []byte(`ui: verbose: "yes"`), "#Settings", WithConcrete(false), WithFilename("config.cue"))
	if err == nil {
		t.Fatal("expected type error")
	}
	if !strings.Contains(err.Error(), "ui.verbose") {
		t.Errorf("error should carry the field path, got: %v", err)
	}
}
