//go:build !windows

package registry

// Register is unsupported off Windows.
func Register(_ string) error {
	return ErrUnsupported
}

// Unregister is unsupported off Windows.
func Unregister() error {
	return ErrUnsupported
}

// IsRegistered always reports false off Windows.
func IsRegistered() bool {
	return false
}
