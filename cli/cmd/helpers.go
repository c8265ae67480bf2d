package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/FahadBinHussain/ImgVault/cli/config"
	"github.com/FahadBinHussain/ImgVault/ytdlp"
)

// loadConfig loads the config named by --config, or falls back to the
// optional file next to the executable.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOptional(config.DefaultPath())
}

// toolChoice merges the tool flag over config. Flags always win.
func toolChoice(flagValue string, cfg *config.Config) (string, []string) {
	tool := flagValue
	if tool == "" {
		tool = cfg.Tool.Path
	}
	return tool, cfg.Tool.ExtraArgs
}

// buildRunner constructs the runner from flags and config.
func buildRunner(c *cli.Context, cfg *config.Config) *ytdlp.Runner {
	tool, extraArgs := toolChoice(c.String("tool"), cfg)
	return ytdlp.NewRunner(tool, extraArgs)
}
