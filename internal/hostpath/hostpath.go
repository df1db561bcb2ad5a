// Package hostpath normalizes operator-supplied host paths before they
// are wired into a container configuration.
package hostpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves ~ to the user's home directory, makes the path
// absolute against the current directory and follows symlinks. A path
// that does not exist yet is returned cleaned but unresolved.
func Expand(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = home
	}

	path = filepath.Clean(path)
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return resolved, nil
}

// Exists checks if a path exists and matches the expected type.
// If expectDir is true, checks for directory; if false, checks for file.
func Exists(path string, expectDir bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir() == expectDir
}

// FileExists checks if a path exists and is a file (not a directory).
func FileExists(path string) bool {
	return Exists(path, false)
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	return Exists(path, true)
}
