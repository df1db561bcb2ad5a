package container

import (
	"strings"
	"testing"

	"github.com/docker/docker/api/types/mount"
)

func TestFeaturesSummary(t *testing.T) {
	c := NewConfig()

	got := c.FeaturesSummary(false)
	for _, want := range []string{
		"Privileged: [red]:cross_mark:[/red]",
		"GUI: [red]:cross_mark:[/red]",
		"Network mode: host",
		"Share timezone:",
		"Common resources:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FeaturesSummary() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Interactive:") || strings.Contains(got, "Shared memory:") {
		t.Errorf("FeaturesSummary(false) leaked verbose lines:\n%s", got)
	}

	c.Privileged = true
	if got := c.FeaturesSummary(false); !strings.Contains(got, "Privileged: :fire:") {
		t.Errorf("FeaturesSummary() with privileges missing the fire icon:\n%s", got)
	}
}

func TestFeaturesSummaryVerbose(t *testing.T) {
	c := NewConfig()
	c.NetworkHost = false

	got := c.FeaturesSummary(true)
	for _, want := range []string{
		"Network mode: bridge",
		"Interactive: :white_check_mark:",
		"TTY: :white_check_mark:",
		"Shared memory: 1G",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FeaturesSummary(true) missing %q in:\n%s", want, got)
		}
	}
}

func TestMountsTextHidesFeatureWiring(t *testing.T) {
	c := NewConfig()
	c.AddVolume("/tmp/.X11-unix", "/tmp/.X11-unix", false, mount.TypeBind)
	c.AddVolume("Docker local volume resources", "/opt/resources", false, mount.TypeVolume)
	c.AddVolume("/etc/timezone", "/etc/timezone", true, mount.TypeBind)
	c.AddVolume("/home/dev/project", "/workspace", false, mount.TypeBind)

	got := c.MountsText(false)
	if strings.Contains(got, "/tmp/.X11-unix") || strings.Contains(got, "/opt/resources") {
		t.Errorf("MountsText(false) leaked hidden targets:\n%s", got)
	}
	if !strings.Contains(got, "/etc/timezone → /etc/timezone (RO)") {
		t.Errorf("MountsText(false) missing the read-only timezone line:\n%s", got)
	}
	if !strings.Contains(got, "/home/dev/project → /workspace") {
		t.Errorf("MountsText(false) missing the workspace line:\n%s", got)
	}

	verbose := c.MountsText(true)
	for _, want := range []string{"/tmp/.X11-unix", "/opt/resources", "/etc/timezone", "/workspace"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("MountsText(true) missing %q:\n%s", want, verbose)
		}
	}
}

func TestDevicesText(t *testing.T) {
	c := NewConfig()
	c.AddDevice("/dev/snd", "", false, true)

	if got := c.DevicesText(false); !strings.Contains(got, "/dev/snd→/dev/snd") {
		t.Errorf("DevicesText(false) = %q, want the src→dest line", got)
	}
	if got := c.DevicesText(false); strings.Contains(got, "rwm") {
		t.Errorf("DevicesText(false) = %q, permissions should be verbose only", got)
	}
	if got := c.DevicesText(true); !strings.Contains(got, "/dev/snd:/dev/snd:rwm") {
		t.Errorf("DevicesText(true) = %q, want the full spec", got)
	}
}

func TestEnvsTextHidesTechnicalKeys(t *testing.T) {
	c := NewConfig()
	c.AddEnv("QT_X11_NO_MITSHM", "1")
	c.AddEnv("DISPLAY", "unix:0")
	c.AddEnv("PATH", "/usr/bin")
	c.AddEnv("HTTP_PROXY", "http://proxy:3128")

	if got, want := c.EnvsText(false), "HTTP_PROXY=http://proxy:3128\n"; got != want {
		t.Errorf("EnvsText(false) = %q, want %q", got, want)
	}

	want := "QT_X11_NO_MITSHM=1\nDISPLAY=unix:0\nPATH=/usr/bin\nHTTP_PROXY=http://proxy:3128\n"
	if got := c.EnvsText(true); got != want {
		t.Errorf("EnvsText(true) = %q, want %q", got, want)
	}
}
