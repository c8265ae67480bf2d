package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/FahadBinHussain/ImgVault/cli/config"
	"github.com/FahadBinHussain/ImgVault/registry"
)

// RegisterCommand returns the register command. Registering twice simply
// overwrites the previous registration (extension ID updates included).
func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Register the native messaging host for the browser",
		Flags: []cli.Flag{
			ConfigFlag,
			&cli.StringFlag{
				Name:  "extension-id",
				Usage: "Browser extension ID allowed to connect (overrides config)",
			},
		},
		Action: registerAction,
	}
}

// UnregisterCommand returns the unregister command.
func UnregisterCommand() *cli.Command {
	return &cli.Command{
		Name:   "unregister",
		Usage:  "Remove the native messaging host registration",
		Action: unregisterAction,
	}
}

func registerAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), exitUsage)
	}

	extensionID := extensionChoice(c.String("extension-id"), cfg)
	if extensionID == "" {
		return cli.Exit("an extension ID is required: pass --extension-id or set extension_id in the config", exitUsage)
	}

	if err := registry.Register(extensionID); err != nil {
		return cli.Exit(fmt.Sprintf("registration failed: %v", err), exitUsage)
	}

	fmt.Printf("Registered %s for chrome-extension://%s/\n", registry.HostName, extensionID)
	return nil
}

func unregisterAction(_ *cli.Context) error {
	err := registry.Unregister()
	switch {
	case err == nil:
		fmt.Printf("Unregistered %s\n", registry.HostName)
		return nil
	case errors.Is(err, registry.ErrNotRegistered):
		// Reported, but not a failure: the desired end state holds.
		fmt.Printf("%s was not registered\n", registry.HostName)
		return nil
	default:
		return cli.Exit(fmt.Sprintf("unregistration failed: %v", err), exitUsage)
	}
}

// extensionChoice merges the extension-id flag over config. Flags always win.
func extensionChoice(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.ExtensionID
}
