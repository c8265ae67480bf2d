// Package cmd provides CLI commands for the imgvault-host binary.
package cmd

import "github.com/urfave/cli/v2"

// Exit codes shared by all commands.
const (
	exitOK      = 0
	exitUsage   = 1
	exitChannel = 2
)

// Shared flags.
var (
	// ConfigFlag points at an explicit config file. Without it, the file
	// next to the host executable is used when present.
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to imgvault-host.yaml (default: next to the executable)",
	}

	// ToolFlag overrides the download tool binary.
	ToolFlag = &cli.StringFlag{
		Name:  "tool",
		Usage: "Path to the yt-dlp binary (overrides config)",
	}

	// FormatFlag selects output format for read-only commands.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}
)

// ReadOnlyFlags returns the shared flags for read-only commands.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{FormatFlag}
}
