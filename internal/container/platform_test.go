package container

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func stubPlatform(t *testing.T, goos, release string) {
	t.Helper()
	oldOS, oldPath := hostOS, kernelReleasePath
	hostOS = goos
	if release == "" {
		kernelReleasePath = filepath.Join(t.TempDir(), "missing")
	} else {
		path := filepath.Join(t.TempDir(), "osrelease")
		if err := os.WriteFile(path, []byte(release+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		kernelReleasePath = path
	}
	t.Cleanup(func() {
		hostOS, kernelReleasePath = oldOS, oldPath
	})
}

func TestHostSharingSupported(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		release string
		want    bool
	}{
		{"windows", "windows", "", false},
		{"plain linux", "linux", "6.8.0-45-generic", true},
		{"wsl2", "linux", "5.15.167.4-microsoft-standard-WSL2", false},
		{"wsl1", "linux", "4.4.0-19041-Microsoft", false},
		{"darwin without release file", "darwin", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPlatform(t, tt.goos, tt.release)
			if got := HostSharingSupported(); got != tt.want {
				t.Errorf("HostSharingSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHostSharingSupportedRealProbe(t *testing.T) {
	// Whatever the answer, the real probe must not panic and must obey
	// the GOOS part of the contract.
	got := HostSharingSupported()
	if runtime.GOOS == "windows" && got {
		t.Error("HostSharingSupported() = true on windows")
	}
}
