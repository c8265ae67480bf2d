//go:build !windows

package ytdlp

import "os/exec"

// suppressWindow is a no-op: only Windows pops a console for child processes.
func suppressWindow(_ *exec.Cmd) {}
