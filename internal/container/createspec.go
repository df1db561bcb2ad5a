package container

import (
	"fmt"
	"strings"

	containerTypes "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"
	"github.com/docker/go-units"
)

// BuildCreateConfigs renders the accumulated state into the two objects
// an engine create call consumes. denbox never issues that call; callers
// hand these to their own client or export them.
func (c *Config) BuildCreateConfigs(image string, cmd []string) (*containerTypes.Config, *containerTypes.HostConfig, error) {
	shmSize, err := units.RAMInBytes(c.ShmSize)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid shm size %q: %w", c.ShmSize, err)
	}

	cfg := &containerTypes.Config{
		Image:      image,
		Cmd:        strslice.StrSlice(cmd),
		Env:        c.EnvList(),
		Tty:        c.Tty,
		OpenStdin:  c.Interactive,
		WorkingDir: c.WorkingDir(),
	}

	hostConfig := &containerTypes.HostConfig{
		Privileged:  c.Privileged,
		NetworkMode: containerTypes.NetworkMode(c.NetworkMode()),
		Mounts:      c.Mounts,
		ShmSize:     shmSize,
		Resources: containerTypes.Resources{
			Devices: c.deviceMappings(),
		},
	}

	// Port bindings are meaningless when the network namespace is
	// shared with the host.
	if !c.NetworkHost && len(c.Ports) > 0 {
		hostConfig.PortBindings = c.Ports
		exposed := make(nat.PortSet, len(c.Ports))
		for port := range c.Ports {
			exposed[port] = struct{}{}
		}
		cfg.ExposedPorts = exposed
	}

	return cfg, hostConfig, nil
}

// deviceMappings parses the accumulated "src:dst:perm" strings back into
// engine device mappings. A missing dest reuses the source; a missing
// permission block grants rwm, the engine default.
func (c *Config) deviceMappings() []containerTypes.DeviceMapping {
	if len(c.Devices) == 0 {
		return nil
	}
	mappings := make([]containerTypes.DeviceMapping, 0, len(c.Devices))
	for _, spec := range c.Devices {
		parts := strings.SplitN(spec, ":", 3)
		m := containerTypes.DeviceMapping{
			PathOnHost:        parts[0],
			PathInContainer:   parts[0],
			CgroupPermissions: "rwm",
		}
		if len(parts) > 1 && parts[1] != "" {
			m.PathInContainer = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			m.CgroupPermissions = parts[2]
		}
		mappings = append(mappings, m)
	}
	return mappings
}
