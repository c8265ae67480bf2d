package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
extension_id: abcdefghijklmnop
tool:
  path: /opt/tools/yt-dlp
  extra_args:
    - --socket-timeout
    - "30"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ExtensionID != "abcdefghijklmnop" {
		t.Errorf("ExtensionID = %q, want %q", cfg.ExtensionID, "abcdefghijklmnop")
	}
	if cfg.Tool.Path != "/opt/tools/yt-dlp" {
		t.Errorf("Tool.Path = %q, want %q", cfg.Tool.Path, "/opt/tools/yt-dlp")
	}
	if len(cfg.Tool.ExtraArgs) != 2 || cfg.Tool.ExtraArgs[0] != "--socket-timeout" {
		t.Errorf("Tool.ExtraArgs = %v, want the two args", cfg.Tool.ExtraArgs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load = nil error, want not-found error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want a not-found message", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "tool: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("Load = nil error, want YAML error")
	}
}

func TestLoadOptional_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if cfg.ExtensionID != "" || cfg.Tool.Path != "" {
		t.Errorf("cfg = %+v, want zero config", cfg)
	}
}

func TestLoadOptional_EmptyPathIsEmptyConfig(t *testing.T) {
	cfg, err := LoadOptional("")
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if cfg.Tool.Path != "" {
		t.Errorf("cfg = %+v, want zero config", cfg)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("IMGVAULT_TOOL", "/usr/local/bin/yt-dlp")
	path := writeConfig(t, `
tool:
  path: ${IMGVAULT_TOOL}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Tool.Path != "/usr/local/bin/yt-dlp" {
		t.Errorf("Tool.Path = %q, want the expanded value", cfg.Tool.Path)
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_SET", "value")
	os.Unsetenv("EXPAND_UNSET")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set var", "x: ${EXPAND_SET}", "x: value"},
		{"unset var", "x: ${EXPAND_UNSET}", "x: "},
		{"unset with default", "x: ${EXPAND_UNSET:-fallback}", "x: fallback"},
		{"set with default", "x: ${EXPAND_SET:-fallback}", "x: value"},
		{"no pattern", "x: plain", "x: plain"},
		{"malformed", "x: ${", "x: ${"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
