package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
	"github.com/spf13/cobra"

	"denbox/internal/config"
	"denbox/internal/container"
	"denbox/internal/hostpath"
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().BoolP("verbose", "v", false, "show feature wiring and technical settings")
	planCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")
	planCmd.Flags().String("image", "", "image recorded in the create payload (default: denbox:latest)")

	// Feature toggles (override config)
	planCmd.Flags().Bool("gui", false, "forward the host X11 display")
	planCmd.Flags().Bool("timezone", false, "share the host timezone")
	planCmd.Flags().Bool("cwd", false, "mount the current directory at /workspace")
	planCmd.Flags().Bool("resources", false, "attach the common resource volume")

	// Container settings (override config)
	planCmd.Flags().Bool("privileged", false, "grant extended privileges")
	planCmd.Flags().String("network", "", "network mode: host or bridge")
	planCmd.Flags().String("shm-size", "", "shared memory size (default: 1G)")

	// Extra wiring
	planCmd.Flags().StringArrayP("publish", "p", nil, "publish a container port ([ip:]host:container[/proto])")
	planCmd.Flags().StringArray("volume", nil, "bind a host path (source:target[:ro])")
	planCmd.Flags().StringArray("device", nil, "share a host device (source[:target[:permissions]])")
	planCmd.Flags().StringArrayP("env", "e", nil, "set an environment variable (KEY=VALUE, or KEY to pass through)")
}

var planCmd = &cobra.Command{
	Use:   "plan [flags] [-- command...]",
	Short: "Plan a workspace container configuration",
	Long: `Plan builds a workspace configuration from the config file and flags
without touching the Docker daemon, then renders it the same way inspect
renders a live container.

With -o yaml it prints the payload a create call would send, which is
useful to review exactly what a feature toggle changes.

Examples:
  denbox plan                            # Preview the configured defaults
  denbox plan --gui --timezone           # Add X11 and timezone sharing
  denbox plan --network bridge -p 8080:80
  denbox plan -o yaml -- zsh -l          # Export the create payload`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	boxConfig, err := planConfig(cmd)
	if err != nil {
		return err
	}

	switch output := stringFlag(cmd, "output", "text"); output {
	case "text":
		renderConfig(boxConfig, boolFlag(cmd, "verbose", cfg.Output.Verbose))
	case "yaml":
		return writeCreatePayload(boxConfig, stringFlag(cmd, "image", cfg.Image.Name), args)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}

// planConfig assembles a container configuration from the loaded config
// file and the command line. Flags win over the file.
func planConfig(cmd *cobra.Command) (*container.Config, error) {
	boxConfig := container.NewConfig()
	boxConfig.Interactive = cfg.Container.Interactive
	boxConfig.Tty = cfg.Container.Tty
	boxConfig.Privileged = boolFlag(cmd, "privileged", cfg.Container.Privileged)

	if shmSize := stringFlag(cmd, "shm-size", cfg.Container.ShmSize); shmSize != "" {
		boxConfig.ShmSize = shmSize
	}

	network := stringFlag(cmd, "network", cfg.Container.Network)
	switch network {
	case config.NetworkHost:
		// NewConfig default
	case config.NetworkBridge:
		boxConfig.NetworkHost = false
	default:
		return nil, fmt.Errorf("invalid network mode: %s (allowed: %s, %s)", network, config.NetworkHost, config.NetworkBridge)
	}

	if boolFlag(cmd, "gui", cfg.Features.GUI) {
		boxConfig.EnableGUI()
	}
	if boolFlag(cmd, "timezone", cfg.Features.Timezone) {
		boxConfig.EnableSharedTimezone()
	}
	if boolFlag(cmd, "resources", cfg.Features.Resources) {
		if err := boxConfig.EnableCommonVolume(); err != nil {
			log.Warnf("Common resource volume unavailable: %v", err)
		}
	}
	if boolFlag(cmd, "cwd", cfg.Features.Cwd) {
		if err := boxConfig.EnableCwdShare(); err != nil {
			return nil, err
		}
	}

	volumes, _ := cmd.Flags().GetStringArray("volume")
	for _, spec := range volumes {
		if err := applyVolumeSpec(boxConfig, spec); err != nil {
			return nil, err
		}
	}

	devices, _ := cmd.Flags().GetStringArray("device")
	for _, spec := range devices {
		if err := applyDeviceSpec(boxConfig, spec); err != nil {
			return nil, err
		}
	}

	published, _ := cmd.Flags().GetStringArray("publish")
	for _, spec := range published {
		if err := applyPortSpec(boxConfig, spec); err != nil {
			return nil, err
		}
	}

	envs, _ := cmd.Flags().GetStringArray("env")
	for _, spec := range envs {
		applyEnvSpec(boxConfig, spec)
	}

	return boxConfig, nil
}

// applyVolumeSpec parses source:target[:ro|rw] and adds the bind mount.
// The source goes through hostpath expansion so ~ and relative paths work.
func applyVolumeSpec(c *container.Config, spec string) error {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid volume: %s (want source:target[:ro])", spec)
	}

	source, err := hostpath.Expand(parts[0])
	if err != nil {
		return fmt.Errorf("invalid volume source %s: %w", parts[0], err)
	}

	readOnly := false
	if len(parts) == 3 {
		switch parts[2] {
		case "ro":
			readOnly = true
		case "rw", "":
		default:
			return fmt.Errorf("invalid volume option %q in %s", parts[2], spec)
		}
	}

	c.AddVolume(source, parts[1], readOnly, mount.TypeBind)
	return nil
}

// applyDeviceSpec parses source[:target[:permissions]] the way docker run
// does and shares the device.
func applyDeviceSpec(c *container.Config, spec string) error {
	if spec == "" {
		return fmt.Errorf("invalid device: %q", spec)
	}

	parts := strings.SplitN(spec, ":", 3)
	target := ""
	if len(parts) > 1 {
		target = parts[1]
	}

	permissions := "rwm"
	if len(parts) > 2 && parts[2] != "" {
		permissions = parts[2]
	}
	for _, r := range permissions {
		if r != 'r' && r != 'w' && r != 'm' {
			return fmt.Errorf("invalid device permissions %q in %s", permissions, spec)
		}
	}

	c.AddDevice(parts[0], target, !strings.ContainsRune(permissions, 'w'), strings.ContainsRune(permissions, 'm'))
	return nil
}

// applyPortSpec parses a docker-style publish spec and records the
// bindings. A spec without a host port publishes to the same port.
func applyPortSpec(c *container.Config, spec string) error {
	mappings, err := nat.ParsePortSpec(spec)
	if err != nil {
		return fmt.Errorf("invalid port: %s: %w", spec, err)
	}

	for _, mapping := range mappings {
		hostPort := mapping.Port.Int()
		if mapping.Binding.HostPort != "" {
			hostPort, err = strconv.Atoi(mapping.Binding.HostPort)
			if err != nil {
				return fmt.Errorf("invalid host port in %s: %w", spec, err)
			}
		}
		if err := c.AddPort(hostPort, mapping.Port.Int(), mapping.Port.Proto(), mapping.Binding.HostIP); err != nil {
			return err
		}
	}
	return nil
}

// applyEnvSpec records KEY=VALUE, or passes KEY through from the host
// environment when no value is given.
func applyEnvSpec(c *container.Config, spec string) {
	if key, value, ok := strings.Cut(spec, "="); ok {
		c.AddEnv(key, value)
	} else {
		c.AddEnv(spec, os.Getenv(spec))
	}
}
