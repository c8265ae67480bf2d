// Package registry manages the OS-side registration that lets the browser
// find and launch the native messaging host: a JSON manifest next to the
// host executable, plus a per-user registry key pointing at it.
//
// Registration is Windows-only. Other platforms get the stub implementation:
// Register and Unregister return ErrUnsupported, IsRegistered reports false.
// Register, Unregister and IsRegistered are idempotent.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// HostName is the native messaging host identifier the extension
	// connects to. It is also the registry subkey name.
	HostName = "com.imgvault.nativehost"

	hostDescription = "ImgVault Native Messaging Host"
	manifestName    = "manifest.json"
)

// ErrUnsupported is returned by Register/Unregister on platforms without a
// browser-native-messaging registration store.
var ErrUnsupported = errors.New("native messaging host registration is only supported on windows")

// ErrNotRegistered is returned by Unregister when no registration exists.
// Callers should report it, not fail on it.
var ErrNotRegistered = errors.New("native messaging host is not registered")

// Manifest is the native messaging host manifest the browser reads.
type Manifest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Path           string   `json:"path"`
	Type           string   `json:"type"`
	AllowedOrigins []string `json:"allowed_origins"`
}

// NewManifest builds the manifest for the given host executable path,
// allowing exactly one extension origin.
func NewManifest(exePath, extensionID string) Manifest {
	return Manifest{
		Name:           HostName,
		Description:    hostDescription,
		Path:           exePath,
		Type:           "stdio",
		AllowedOrigins: []string{fmt.Sprintf("chrome-extension://%s/", extensionID)},
	}
}

// WriteManifest writes the manifest as indented JSON. Writing over an
// existing manifest is how re-registration updates the extension ID.
func (m Manifest) WriteManifest(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ManifestPath returns the manifest location next to the host executable.
func ManifestPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate host executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exePath), manifestName), nil
}
