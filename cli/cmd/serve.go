package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/FahadBinHussain/ImgVault/host"
	"github.com/FahadBinHussain/ImgVault/log"
)

// ServeCommand returns the serve command: the headless native messaging
// responder over stdin/stdout. This is what the browser-launched host runs;
// invoking it by hand is only useful for protocol debugging.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the native messaging loop over stdin/stdout (headless)",
		Flags: []cli.Flag{
			ConfigFlag,
			ToolFlag,
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), exitUsage)
	}

	logger := log.NewLogger("native")
	h := host.New(os.Stdin, os.Stdout, buildRunner(c, cfg), logger)

	if err := h.Serve(c.Context); err != nil {
		// Only channel-level I/O failures reach here; per-request errors
		// were already answered on the wire.
		return cli.Exit(fmt.Sprintf("channel failure: %v", err), exitChannel)
	}
	return nil
}
