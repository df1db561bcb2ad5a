package container

import (
	"fmt"
	"strings"

	"denbox/internal/console"
)

// Wiring detail hidden from non-verbose listings; the feature lines
// already tell the user these exist.
var (
	hiddenMountTargets = []string{x11SocketPath, resourcesTarget}
	hiddenEnvKeys      = []string{"QT_X11_NO_MITSHM", "DISPLAY", "PATH"}
)

// FeaturesSummary renders the feature flags as one markup line each,
// colored by state. Verbose appends the interactive, TTY and shared
// memory settings.
func (c *Config) FeaturesSummary(verbose bool) string {
	var b strings.Builder

	open, closing := console.StateColor(c.Privileged)
	privileged := "[red]" + console.IconCross + "[/red]"
	if c.Privileged {
		privileged = console.IconFire
	}
	fmt.Fprintf(&b, "%sPrivileged: %s%s\n", open, privileged, closing)

	open, closing = console.StateColor(c.guiEnabled)
	fmt.Fprintf(&b, "%sGUI: %s%s\n", open, console.Bool(c.guiEnabled), closing)

	fmt.Fprintf(&b, "Network mode: %s\n", c.NetworkMode())

	open, closing = console.StateColor(c.shareTimezone)
	fmt.Fprintf(&b, "%sShare timezone: %s%s\n", open, console.Bool(c.shareTimezone), closing)

	open, closing = console.StateColor(c.commonResources)
	fmt.Fprintf(&b, "%sCommon resources: %s%s\n", open, console.Bool(c.commonResources), closing)

	if verbose {
		fmt.Fprintf(&b, "Interactive: %s\n", console.Bool(c.Interactive))
		fmt.Fprintf(&b, "TTY: %s\n", console.Bool(c.Tty))
		fmt.Fprintf(&b, "Shared memory: %s\n", c.ShmSize)
	}

	return b.String()
}

// MountsText lists mounts as "source → target" lines with a read-only
// marker. Non-verbose hides the X11 socket and resource volume wiring.
func (c *Config) MountsText(verbose bool) string {
	var b strings.Builder
	for _, m := range c.Mounts {
		if !verbose && hiddenTarget(m.Target) {
			continue
		}
		readOnly := ""
		if m.ReadOnly {
			readOnly = " (RO)"
		}
		fmt.Fprintf(&b, "%s → %s%s\n", m.Source, m.Target, readOnly)
	}
	return b.String()
}

// DevicesText lists device pass-throughs, paths only unless verbose,
// which keeps the permission suffix.
func (c *Config) DevicesText(verbose bool) string {
	var b strings.Builder
	for _, spec := range c.Devices {
		if verbose {
			fmt.Fprintf(&b, "%s\n", spec)
			continue
		}
		parts := strings.SplitN(spec, ":", 3)
		dest := parts[0]
		if len(parts) > 1 {
			dest = parts[1]
		}
		fmt.Fprintf(&b, "%s→%s\n", parts[0], dest)
	}
	return b.String()
}

// EnvsText lists environment variables in insertion order. Non-verbose
// drops the technical keys the toggles inject.
func (c *Config) EnvsText(verbose bool) string {
	var b strings.Builder
	for _, key := range c.envKeys {
		if !verbose && hiddenEnv(key) {
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", key, c.envs[key])
	}
	return b.String()
}

func hiddenTarget(target string) bool {
	for _, t := range hiddenMountTargets {
		if target == t {
			return true
		}
	}
	return false
}

func hiddenEnv(key string) bool {
	for _, k := range hiddenEnvKeys {
		if key == k {
			return true
		}
	}
	return false
}
