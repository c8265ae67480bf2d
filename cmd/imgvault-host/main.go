// Package main provides the imgvault-host CLI entrypoint.
//
// The same binary serves two callers. A human runs subcommands:
//
//	imgvault-host register --extension-id <id>
//	imgvault-host status
//	imgvault-host fetch -o <path> <url>
//
// The browser launches the binary with no subcommand (only its origin as an
// argument), so headless mode is selected before CLI parsing: an explicit
// --native argument anywhere, or on Windows a piped stdin, rewrites the
// invocation to `serve`.
//
// Exit codes:
//   - 0: clean shutdown
//   - 1: usage or configuration error
//   - 2: native messaging channel failure
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/FahadBinHussain/ImgVault/cli/cmd"
	"github.com/FahadBinHussain/ImgVault/host"
	"github.com/FahadBinHussain/ImgVault/types"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "imgvault-host",
		Usage:          "ImgVault native messaging host",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.ServeCommand(),
			cmd.RegisterCommand(),
			cmd.UnregisterCommand(),
			cmd.StatusCommand(),
			cmd.FetchCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(headlessArgs(os.Args)); err != nil {
		// ExitErrHandler already handled cli.Exit errors; this branch
		// covers unexpected ones that weren't wrapped.
		os.Exit(1)
	}
}

// headlessArgs rewrites the command line to `serve` when the process was
// launched as a protocol responder rather than by a human.
func headlessArgs(args []string) []string {
	if isHeadless(args[1:]) {
		return []string{args[0], "serve"}
	}
	return args
}

// isHeadless detects a browser launch: the explicit --native flag wins, and
// otherwise only an invocation carrying no subcommand (bare, or with the
// browser's origin argument) consults the stdin-pipe heuristic. An explicit
// subcommand is never overridden, piped stdin or not.
func isHeadless(args []string) bool {
	browserLaunch := len(args) == 0
	for _, arg := range args {
		if arg == "--native" {
			return true
		}
		if strings.HasPrefix(arg, "chrome-extension://") {
			browserLaunch = true
		}
	}
	return browserLaunch && host.StdinIsPipe()
}

// exitErrHandler preserves exit codes from cli.Exit() so channel failures
// surface as exit code 2 to whatever supervises the host.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N"; skip those.
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
