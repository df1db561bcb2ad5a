package container

import (
	"fmt"
	"strings"

	containerTypes "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
)

// FromInspect builds a Config mirroring a container the engine already
// runs. Absent sections of the inspect payload fall back to the
// NewConfig defaults. A missing network map is the one fatal case: the
// engine reports one for every real container.
func FromInspect(resp containerTypes.InspectResponse) (*Config, error) {
	c := NewConfig()

	if cfg := resp.Config; cfg != nil {
		c.Tty = cfg.Tty
		c.Interactive = cfg.OpenStdin
		if err := c.parseEnvs(cfg.Env); err != nil {
			return nil, err
		}
		for _, key := range c.envKeys {
			if strings.Contains(key, "DISPLAY") {
				c.guiEnabled = true
				break
			}
		}
	}

	if resp.ContainerJSONBase != nil && resp.HostConfig != nil {
		c.Privileged = resp.HostConfig.Privileged
		for _, dev := range resp.HostConfig.Devices {
			c.Devices = append(c.Devices, fmt.Sprintf("%s:%s:%s",
				dev.PathOnHost, dev.PathInContainer, dev.CgroupPermissions))
		}
	}

	c.ingestMounts(resp.Mounts)

	settings := resp.NetworkSettings
	if settings == nil || settings.Networks == nil {
		return nil, ErrNoNetworks
	}
	_, c.NetworkHost = settings.Networks["host"]
	if settings.Ports != nil {
		c.Ports = settings.Ports
	}

	log.Debugf("hydrated configuration: %s", c)
	return c, nil
}

// parseEnvs ingests the inspect environment list. Entries may arrive
// quoted; the split happens on the first separator only so values keep
// embedded equals signs. An entry without a separator aborts hydration.
func (c *Config) parseEnvs(entries []string) error {
	for _, raw := range entries {
		entry := strings.Trim(raw, `'"`)
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedEnv, raw)
		}
		c.AddEnv(key, value)
	}
	return nil
}

// ingestMounts records inspected mount points and flips the feature
// flags their targets imply. The target checks are exclusive per mount
// and run in fixed priority: timezone, then resources, then workspace.
func (c *Config) ingestMounts(points []containerTypes.MountPoint) {
	for _, mp := range points {
		mountType := mp.Type
		if mountType == "" {
			mountType = mount.TypeVolume
		}
		source := mp.Source
		if mountType == mount.TypeVolume {
			name := mp.Name
			if name == "" {
				name = "unknown"
			}
			source = fmt.Sprintf("Docker %s volume %s", mp.Driver, name)
		}
		m := mount.Mount{
			Type:     mountType,
			Source:   source,
			Target:   mp.Destination,
			ReadOnly: !mp.RW,
		}
		if mp.Propagation != "" {
			m.BindOptions = &mount.BindOptions{Propagation: mp.Propagation}
		}
		c.Mounts = append(c.Mounts, m)

		switch {
		case strings.Contains(mp.Destination, timezonePath):
			c.shareTimezone = true
		case strings.Contains(mp.Destination, resourcesTarget):
			c.commonResources = true
		case strings.Contains(mp.Destination, workspaceTarget):
			c.sharedCwd = mp.Source
			c.cwdShared = true
		}
	}
}
