// Package container models the runtime configuration of a single denbox
// container: network mode, filesystem mounts, device pass-through,
// environment variables and feature flags. A Config is either planned
// procedurally before creation or hydrated from a running container's
// inspect data; translating it into engine API objects is the caller's
// final step, denbox never issues the create call itself.
package container

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"

	"denbox/internal/logging"
)

var log = logging.GetLogger("container")

// Container paths shared by the toggles, hydration and display code.
const (
	workspaceTarget = "/workspace"
	dataDir         = "/data"
	x11SocketPath   = "/tmp/.X11-unix"
	resourcesTarget = "/opt/resources"
	timezonePath    = "/etc/timezone"
	localtimePath   = "/etc/localtime"

	defaultShmSize = "1G"
)

// Config is the runtime configuration of one container. The feature
// flags are only reachable through their toggle methods; the remaining
// fields are plain data the caller may set directly. Not safe for
// concurrent use: each instance belongs to a single build or inspect
// operation for its whole lifetime.
type Config struct {
	NetworkHost bool
	Privileged  bool
	Interactive bool
	Tty         bool
	ShmSize     string
	Ports       nat.PortMap
	Mounts      []mount.Mount
	Devices     []string

	guiEnabled      bool
	shareTimezone   bool
	commonResources bool
	sharedCwd       string
	cwdShared       bool

	envKeys []string
	envs    map[string]string
}

// NewConfig returns a configuration with the denbox defaults: host
// networking, unprivileged, interactive with a TTY, 1G of shared memory,
// nothing mounted.
func NewConfig() *Config {
	return &Config{
		NetworkHost: true,
		Interactive: true,
		Tty:         true,
		ShmSize:     defaultShmSize,
		Ports:       nat.PortMap{},
		envs:        map[string]string{},
	}
}

// GUIEnabled reports whether X11 forwarding is wired into the config.
func (c *Config) GUIEnabled() bool {
	return c.guiEnabled
}

// TimezoneShared reports whether the host timezone files are mounted.
func (c *Config) TimezoneShared() bool {
	return c.shareTimezone
}

// CommonResourcesEnabled reports whether the shared resource volume was
// requested.
func (c *Config) CommonResourcesEnabled() bool {
	return c.commonResources
}

// SharedCwd returns the host directory shared at the workspace target
// and whether one is set at all.
func (c *Config) SharedCwd() (string, bool) {
	return c.sharedCwd, c.cwdShared
}

// EnableGUI wires X11 forwarding into the container: the host X socket
// directory plus the DISPLAY and Qt shared-memory environment. On hosts
// that cannot share those paths the call logs an error and changes
// nothing. Enabling twice is a no-op.
func (c *Config) EnableGUI() {
	if !HostSharingSupported() {
		log.Error("GUI sharing is not available on Windows or WSL hosts")
		return
	}
	if c.guiEnabled {
		return
	}
	log.Debug("enabling display sharing")
	c.AddVolume(x11SocketPath, x11SocketPath, false, mount.TypeBind)
	c.AddEnv("QT_X11_NO_MITSHM", "1")
	c.AddEnv("DISPLAY", "unix"+os.Getenv("DISPLAY"))
	c.guiEnabled = true
}

// EnableSharedTimezone mounts the host timezone and localtime files
// read-only so the container clock matches the host. Same platform skip
// and idempotence as EnableGUI.
func (c *Config) EnableSharedTimezone() {
	if !HostSharingSupported() {
		log.Error("timezone sharing is not available on Windows or WSL hosts")
		return
	}
	if c.shareTimezone {
		return
	}
	log.Debug("enabling timezone sharing")
	c.AddVolume(timezonePath, timezonePath, true, mount.TypeBind)
	c.AddVolume(localtimePath, localtimePath, true, mount.TypeBind)
	c.shareTimezone = true
}

// EnableCommonVolume records a request for the shared resource volume.
// The sharing mechanism is reserved and not wired up yet, so the first
// call flags the request and reports ErrCommonVolume; later calls are
// no-ops like the other toggles.
func (c *Config) EnableCommonVolume() error {
	if c.commonResources {
		return nil
	}
	c.commonResources = true
	return ErrCommonVolume
}

// EnableCwdShare mounts the current working directory at the workspace
// target. Unlike the other toggles it is not guarded: calling it again
// rebinds to wherever the process runs now, and duplicate mounts are
// the caller's responsibility.
func (c *Config) EnableCwdShare() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	c.sharedCwd = cwd
	c.cwdShared = true
	log.Debugf("sharing %s at %s", cwd, workspaceTarget)
	c.AddVolume(cwd, workspaceTarget, false, mount.TypeBind)
	return nil
}

// AddVolume appends a mount without deduplication or host path checks.
// An empty mount type means a bind mount.
func (c *Config) AddVolume(source, target string, readOnly bool, mountType mount.Type) {
	if mountType == "" {
		mountType = mount.TypeBind
	}
	c.Mounts = append(c.Mounts, mount.Mount{
		Type:     mountType,
		Source:   source,
		Target:   target,
		ReadOnly: readOnly,
	})
}

// AddDevice exposes a host device inside the container. An empty dest
// reuses the source path. Permissions are assembled as r, then w unless
// read-only, then m when mknod is allowed.
func (c *Config) AddDevice(source, dest string, readOnly, allowMknod bool) {
	if dest == "" {
		dest = source
	}
	perm := "r"
	if !readOnly {
		perm += "w"
	}
	if allowMknod {
		perm += "m"
	}
	c.Devices = append(c.Devices, fmt.Sprintf("%s:%s:%s", source, dest, perm))
}

// AddEnv upserts an environment variable. A key that is already present
// keeps its position and gets the new value.
func (c *Config) AddEnv(key, value string) {
	if _, ok := c.envs[key]; !ok {
		c.envKeys = append(c.envKeys, key)
	}
	c.envs[key] = value
}

// Env looks up an environment variable by key.
func (c *Config) Env(key string) (string, bool) {
	value, ok := c.envs[key]
	return value, ok
}

// EnvList returns the environment as KEY=VALUE strings in insertion
// order, the form the engine API consumes.
func (c *Config) EnvList() []string {
	list := make([]string, 0, len(c.envKeys))
	for _, key := range c.envKeys {
		list = append(list, key+"="+c.envs[key])
	}
	return list
}

// AddPort publishes a container port on the host. Under host networking
// the container shares every port already, so the request is logged and
// dropped without error. A container port of zero publishes the same
// number as the host port; an empty host IP binds all interfaces. A
// repeated container port/protocol pair overwrites the earlier binding.
func (c *Config) AddPort(hostPort, containerPort int, protocol, hostIP string) error {
	if c.NetworkHost {
		log.Warning("host networking shares every port already, skipping explicit port publication")
		log.Warning("switch the network mode to bridge to publish individual ports")
		return nil
	}
	proto := strings.ToLower(protocol)
	switch proto {
	case "tcp", "udp", "sctp":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedProtocol, protocol)
	}
	if containerPort <= 0 {
		containerPort = hostPort
	}
	if hostIP == "" {
		hostIP = "0.0.0.0"
	}
	port := nat.Port(fmt.Sprintf("%d/%s", containerPort, proto))
	c.Ports[port] = []nat.PortBinding{{HostIP: hostIP, HostPort: strconv.Itoa(hostPort)}}
	return nil
}

// NetworkMode returns the engine network mode name for this config.
func (c *Config) NetworkMode() string {
	if c.NetworkHost {
		return "host"
	}
	return "bridge"
}

// WorkingDir returns the container working directory: the workspace
// target when a directory share is wired, the data directory otherwise.
func (c *Config) WorkingDir() string {
	if c.cwdShared {
		return workspaceTarget
	}
	return dataDir
}

// String gives a compact single-line view for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("privileged=%t gui=%t timezone=%t resources=%t network=%s workdir=%s mounts=%d devices=%d envs=%d ports=%d",
		c.Privileged, c.guiEnabled, c.shareTimezone, c.commonResources,
		c.NetworkMode(), c.WorkingDir(),
		len(c.Mounts), len(c.Devices), len(c.envs), len(c.Ports))
}
