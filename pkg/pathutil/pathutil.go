// Package pathutil resolves user-supplied paths before tools touch the
// filesystem.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a user-supplied path: "~" and "~/..." resolve against the
// user's home directory, relative paths resolve against the working
// directory, and the result is cleaned. Symlinks are resolved when the path
// exists, to prevent symlink traversal.
func Expand(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is required")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	cleaned := filepath.Clean(absPath)

	if _, err := os.Lstat(cleaned); err == nil {
		resolved, err := filepath.EvalSymlinks(cleaned)
		if err != nil {
			return "", fmt.Errorf("failed to resolve symlinks: %w", err)
		}
		return resolved, nil
	}

	return cleaned, nil
}
