package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/FahadBinHussain/ImgVault/cli/render"
	"github.com/FahadBinHussain/ImgVault/registry"
)

// StatusResponse is the response for the status command.
type StatusResponse struct {
	Registered   bool   `json:"registered"`
	HostName     string `json:"host_name"`
	ManifestPath string `json:"manifest_path,omitempty"`
	Tool         string `json:"tool"`
	ToolPath     string `json:"tool_path,omitempty"`
	ToolError    string `json:"tool_error,omitempty"`
}

// StatusCommand returns the status command: registration state plus download
// tool resolution. Read-only; never touches the registry or the tool.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show registration state and download tool resolution",
		Flags:  append(ReadOnlyFlags(), ConfigFlag, ToolFlag),
		Action: statusAction,
	}
}

func statusAction(c *cli.Context) error {
	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), exitUsage)
	}

	runner := buildRunner(c, cfg)
	resp := StatusResponse{
		Registered: registry.IsRegistered(),
		HostName:   registry.HostName,
		Tool:       runner.Tool,
	}

	if manifestPath, err := registry.ManifestPath(); err == nil {
		resp.ManifestPath = manifestPath
	}

	if toolPath, err := runner.Resolve(); err == nil {
		resp.ToolPath = toolPath
	} else {
		resp.ToolError = err.Error()
	}

	return r.Render(resp)
}
