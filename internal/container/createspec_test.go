package container

import (
	"reflect"
	"testing"

	containerTypes "github.com/docker/docker/api/types/container"
)

func TestBuildCreateConfigsDefaults(t *testing.T) {
	c := NewConfig()
	c.AddEnv("TERM", "xterm")

	cfg, hostConfig, err := c.BuildCreateConfigs("denbox:latest", []string{"bash"})
	if err != nil {
		t.Fatalf("BuildCreateConfigs() error = %v", err)
	}

	if cfg.Image != "denbox:latest" {
		t.Errorf("Image = %q, want %q", cfg.Image, "denbox:latest")
	}
	if got := []string(cfg.Cmd); !reflect.DeepEqual(got, []string{"bash"}) {
		t.Errorf("Cmd = %v, want [bash]", got)
	}
	if !cfg.Tty || !cfg.OpenStdin {
		t.Errorf("Tty/OpenStdin = %v/%v, want true/true", cfg.Tty, cfg.OpenStdin)
	}
	if cfg.WorkingDir != "/data" {
		t.Errorf("WorkingDir = %q, want %q", cfg.WorkingDir, "/data")
	}
	if !reflect.DeepEqual(cfg.Env, []string{"TERM=xterm"}) {
		t.Errorf("Env = %v, want [TERM=xterm]", cfg.Env)
	}

	if hostConfig.NetworkMode != containerTypes.NetworkMode("host") {
		t.Errorf("NetworkMode = %q, want host", hostConfig.NetworkMode)
	}
	if hostConfig.ShmSize != 1<<30 {
		t.Errorf("ShmSize = %d, want %d", hostConfig.ShmSize, 1<<30)
	}
	if hostConfig.PortBindings != nil {
		t.Errorf("PortBindings = %v, want none under host networking", hostConfig.PortBindings)
	}
	if hostConfig.Privileged {
		t.Error("Privileged = true, want false")
	}
}

func TestBuildCreateConfigsBridgePorts(t *testing.T) {
	c := NewConfig()
	c.NetworkHost = false
	if err := c.AddPort(8080, 80, "tcp", ""); err != nil {
		t.Fatal(err)
	}

	cfg, hostConfig, err := c.BuildCreateConfigs("denbox:latest", nil)
	if err != nil {
		t.Fatalf("BuildCreateConfigs() error = %v", err)
	}

	if hostConfig.NetworkMode != containerTypes.NetworkMode("bridge") {
		t.Errorf("NetworkMode = %q, want bridge", hostConfig.NetworkMode)
	}
	if _, ok := hostConfig.PortBindings["80/tcp"]; !ok {
		t.Errorf("PortBindings = %v, want 80/tcp", hostConfig.PortBindings)
	}
	if _, ok := cfg.ExposedPorts["80/tcp"]; !ok {
		t.Errorf("ExposedPorts = %v, want 80/tcp", cfg.ExposedPorts)
	}
}

func TestBuildCreateConfigsDeviceMappings(t *testing.T) {
	c := NewConfig()
	c.AddDevice("/dev/snd", "", true, false)
	// Device specs without dest or permissions, the form hydration can
	// carry over from sparse inspect data.
	c.Devices = append(c.Devices, "/dev/fuse")

	_, hostConfig, err := c.BuildCreateConfigs("denbox:latest", nil)
	if err != nil {
		t.Fatalf("BuildCreateConfigs() error = %v", err)
	}

	want := []containerTypes.DeviceMapping{
		{PathOnHost: "/dev/snd", PathInContainer: "/dev/snd", CgroupPermissions: "r"},
		{PathOnHost: "/dev/fuse", PathInContainer: "/dev/fuse", CgroupPermissions: "rwm"},
	}
	if !reflect.DeepEqual(hostConfig.Resources.Devices, want) {
		t.Errorf("Devices = %+v, want %+v", hostConfig.Resources.Devices, want)
	}
}

func TestBuildCreateConfigsWorkspaceWorkingDir(t *testing.T) {
	c := NewConfig()
	c.sharedCwd = "/home/dev/project"
	c.cwdShared = true

	cfg, _, err := c.BuildCreateConfigs("denbox:latest", nil)
	if err != nil {
		t.Fatalf("BuildCreateConfigs() error = %v", err)
	}
	if cfg.WorkingDir != "/workspace" {
		t.Errorf("WorkingDir = %q, want %q", cfg.WorkingDir, "/workspace")
	}
}

func TestBuildCreateConfigsRejectsBadShmSize(t *testing.T) {
	c := NewConfig()
	c.ShmSize = "plenty"

	if _, _, err := c.BuildCreateConfigs("denbox:latest", nil); err == nil {
		t.Error("BuildCreateConfigs() error = nil, want shm size parse failure")
	}
}
