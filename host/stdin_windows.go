//go:build windows

package host

import (
	"os"

	"golang.org/x/sys/windows"
)

// StdinIsPipe reports whether stdin is a pipe. The browser always launches
// the host with piped stdio, so a pipe means headless mode even without the
// --native flag.
func StdinIsPipe() bool {
	fileType, err := windows.GetFileType(windows.Handle(os.Stdin.Fd()))
	if err != nil {
		return false
	}
	return fileType == windows.FILE_TYPE_PIPE
}
