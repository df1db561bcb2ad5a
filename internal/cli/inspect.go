package cli

import (
	"context"
	"fmt"

	containerTypes "github.com/docker/docker/api/types/container"
	"github.com/spf13/cobra"

	"denbox/internal/container"
	"denbox/internal/docker"
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolP("verbose", "v", false, "show feature wiring and technical settings")
	inspectCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <container>",
	Short: "Rebuild a container's workspace configuration",
	Long: `Inspect reads a container through the Docker API and rebuilds the
denbox view of it: network mode, privileges, mounts, devices, published
ports, environment and the workspace features they imply.

The container is only read, never modified.

Examples:
  denbox inspect mybox
  denbox inspect -v 4f1f5c6bfc75
  denbox inspect -o yaml mybox`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := docker.New(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.Inspect(ctx, args[0])
	if err != nil {
		return err
	}

	boxConfig, err := container.FromInspect(resp)
	if err != nil {
		return fmt.Errorf("failed to read configuration of %s: %w", args[0], err)
	}

	switch output := stringFlag(cmd, "output", "text"); output {
	case "text":
		renderConfig(boxConfig, boolFlag(cmd, "verbose", cfg.Output.Verbose))
	case "yaml":
		return writeCreatePayload(boxConfig, inspectedImage(resp), inspectedCommand(resp))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}

// inspectedImage prefers the image recorded on the container itself over
// the configured default.
func inspectedImage(resp containerTypes.InspectResponse) string {
	if resp.Config != nil && resp.Config.Image != "" {
		return resp.Config.Image
	}
	return cfg.Image.Name
}

func inspectedCommand(resp containerTypes.InspectResponse) []string {
	if resp.Config == nil {
		return nil
	}
	return resp.Config.Cmd
}
