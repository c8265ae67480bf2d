//go:build !windows

package host

// StdinIsPipe always reports false off Windows: shells pipe into CLI
// invocations routinely there, so only the explicit --native flag selects
// headless mode.
func StdinIsPipe() bool {
	return false
}
