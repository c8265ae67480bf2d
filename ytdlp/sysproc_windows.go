//go:build windows

package ytdlp

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// suppressWindow keeps the child console window from flashing up. Downloads
// triggered from the browser are background operations; the host itself has
// no window either.
func suppressWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
