package container

import (
	"os"
	"runtime"
	"strings"
)

// Swapped by tests.
var (
	hostOS            = runtime.GOOS
	kernelReleasePath = "/proc/sys/kernel/osrelease"
)

// HostSharingSupported reports whether bind-mounting host sockets and
// clock files into a container works on this machine. Windows hosts and
// WSL distributions run the engine inside a VM, so host paths do not
// resolve from there.
func HostSharingSupported() bool {
	if hostOS == "windows" {
		return false
	}
	release, err := os.ReadFile(kernelReleasePath)
	if err != nil {
		return true
	}
	return !strings.Contains(strings.ToLower(string(release)), "microsoft")
}
