// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/speccheck/speccheck/internal/issue"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return p
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults %+v", *cfg, *DefaultConfig())
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, "config.cue", `
rules_file: "/etc/speccheck/rules.cue"
ui: verbose: true
`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.RulesFile != "/etc/speccheck/rules.cue" {
		t.Errorf("RulesFile = %q", cfg.RulesFile)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want default %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
}

func TestLoad_ExplicitFileWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config.cue", `ui: color_scheme: "light"`)
	explicit := writeConfig(t, t.TempDir(), "custom.cue", `ui: color_scheme: "dark"`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: explicit, ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != explicit {
		t.Errorf("resolved path = %q, want %q", path, explicit)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeDark)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "missing explicit file", missing: true},
		{name: "syntax error", content: "ui: {"},
		{name: "unknown key", content: `container_engine: "docker"`},
		{name: "bad color scheme", content: `ui: color_scheme: "purple"`},
		{name: "wrong type", content: `ui: verbose: "yes"`},
		{name: "empty rules file", content: `rules_file: ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "missing.cue")
			if !tt.missing {
				path = writeConfig(t, t.TempDir(), "config.cue", tt.content)
			}

			_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("loadWithOptions() expected error")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error type = %T, want *issue.ActionableError", err)
			}
			if ae.IssueID != issue.ConfigLoadFailedID {
				t.Errorf("IssueID = %d, want %d", ae.IssueID, issue.ConfigLoadFailedID)
			}
			if ae.Resource != path {
				t.Errorf("Resource = %q, want %q", ae.Resource, path)
			}
		})
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

//nolint:paralleltest // t.Setenv
func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.cue", `
rules_file: "from-file.cue"
ui: color_scheme: "light"
`)

	t.Setenv("SPECCHECK_RULES_FILE", "from-env.cue")
	t.Setenv("SPECCHECK_UI_VERBOSE", "true")

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if cfg.RulesFile != "from-env.cue" {
		t.Errorf("RulesFile = %q, want env value", cfg.RulesFile)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want env value true")
	}
	if cfg.UI.ColorScheme != ColorSchemeLight {
		t.Errorf("UI.ColorScheme = %q, want file value", cfg.UI.ColorScheme)
	}
}

//nolint:paralleltest // t.Setenv
func TestLoad_InvalidEnvColorScheme(t *testing.T) {
	t.Setenv("SPECCHECK_UI_COLOR_SCHEME", "purple")

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Fatalf("error = %v, want ErrInvalidColorScheme", err)
	}
}

//nolint:paralleltest // mutates configDirOverride
func TestConfigDir_Override(t *testing.T) {
	t.Cleanup(Reset)

	SetConfigDirOverride("/tmp/speccheck-test")
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if got != "/tmp/speccheck-test" {
		t.Errorf("ConfigDir() = %q, want override", got)
	}

	Reset()
	got, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if filepath.Base(got) != AppName {
		t.Errorf("ConfigDir() = %q, want a %q directory", got, AppName)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	in := &Config{RulesFile: "rules.cue", UI: UIConfig{ColorScheme: ColorSchemeDark, Verbose: true}}
	content := GenerateCUE(in)
	if !strings.Contains(content, `rules_file: "rules.cue"`) {
		t.Errorf("GenerateCUE() missing rules_file:\n%s", content)
	}

	path := writeConfig(t, t.TempDir(), "config.cue", content)
	out, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if *out != *in {
		t.Errorf("loaded %+v, want %+v", *out, *in)
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, "config.cue", `ui: verbose: true`)

	p := NewProvider()
	src, err := p.Source(LoadOptions{ConfigDirPath: dir})
	if err != nil || src != want {
		t.Errorf("Source() = %q, %v; want %q", src, err, want)
	}

	cfg, err := p.Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("Load() did not read the config dir file")
	}
}
