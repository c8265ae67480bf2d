// Package config handles the optional YAML config file for the host.
//
// All values act as defaults; CLI flags always override config values. The
// file is looked up next to the host executable so a browser-launched host
// (which gets no flags) still picks it up.
package config

import (
	"os"
	"path/filepath"
)

// FileName is the config file looked up next to the host executable.
const FileName = "imgvault-host.yaml"

// Config represents an imgvault-host.yaml configuration file.
type Config struct {
	// ExtensionID is the default extension for register.
	ExtensionID string `yaml:"extension_id"`
	// Tool configures the yt-dlp invocation.
	Tool ToolConfig `yaml:"tool"`
}

// ToolConfig holds download tool defaults.
type ToolConfig struct {
	// Path is the binary name or path. Empty means "yt-dlp", resolved
	// next to the host executable first, then on PATH.
	Path string `yaml:"path"`
	// ExtraArgs are appended to every tool invocation.
	ExtraArgs []string `yaml:"extra_args"`
}

// DefaultPath returns the config path next to the host executable, or empty
// if the executable cannot be located.
func DefaultPath() string {
	exePath, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exePath), FileName)
}
