package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/FahadBinHussain/ImgVault/ytdlp"
)

// FetchCommand returns the fetch command: an interactive download with live
// yt-dlp output, for testing the tool contract without a browser attached.
// Unlike the headless path, the reported path on success is the requested
// output path; the streaming mode has no after-move print to read.
func FetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Download a URL interactively with live progress output",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			ConfigFlag,
			ToolFlag,
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Destination path template passed to the tool",
				Required: true,
			},
		},
		Action: fetchAction,
	}
}

func fetchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("fetch requires exactly one URL argument", exitUsage)
	}
	url := c.Args().First()
	outputPath := c.String("output")

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), exitUsage)
	}

	// Ctrl-C kills the in-flight tool via the command context.
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := buildRunner(c, cfg)
	err = runner.Stream(ctx, url, outputPath, func(line string) {
		fmt.Printf("[yt-dlp] %s\n", line)
	})
	if err != nil {
		var execErr *ytdlp.ExecError
		if errors.As(err, &execErr) {
			return cli.Exit(fmt.Sprintf("download failed with exit code %d", execErr.ExitCode), exitUsage)
		}
		return cli.Exit(fmt.Sprintf("download failed: %v", err), exitUsage)
	}

	fmt.Printf("Download complete: %s\n", outputPath)
	return nil
}
