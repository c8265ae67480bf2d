//go:build windows

package registry

import (
	"errors"
	"fmt"
	"os"

	winreg "golang.org/x/sys/windows/registry"
)

// keyPath is the per-user Chrome native messaging hosts namespace. HKCU keeps
// registration admin-free.
const keyPath = `Software\Google\Chrome\NativeMessagingHosts\` + HostName

// Register writes the manifest next to the host executable and points the
// registry key's default value at it. Registering twice overwrites.
func Register(extensionID string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate host executable: %w", err)
	}

	manifestPath, err := ManifestPath()
	if err != nil {
		return err
	}
	if err := NewManifest(exePath, extensionID).WriteManifest(manifestPath); err != nil {
		return err
	}

	key, _, err := winreg.CreateKey(winreg.CURRENT_USER, keyPath, winreg.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("failed to create registry key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("", manifestPath); err != nil {
		return fmt.Errorf("failed to set registry value: %w", err)
	}
	return nil
}

// Unregister deletes the registry key and the manifest file. A missing key
// yields ErrNotRegistered so callers can report it without failing.
func Unregister() error {
	err := winreg.DeleteKey(winreg.CURRENT_USER, keyPath)
	if err != nil {
		if errors.Is(err, winreg.ErrNotExist) {
			return ErrNotRegistered
		}
		return fmt.Errorf("failed to delete registry key: %w", err)
	}

	manifestPath, err := ManifestPath()
	if err != nil {
		return err
	}
	if err := os.Remove(manifestPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete manifest: %w", err)
	}
	return nil
}

// IsRegistered reports whether the registration key exists. Never errors.
func IsRegistered() bool {
	key, err := winreg.OpenKey(winreg.CURRENT_USER, keyPath, winreg.QUERY_VALUE)
	if err != nil {
		return false
	}
	_ = key.Close()
	return true
}
