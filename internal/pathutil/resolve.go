// Package pathutil provides path resolution for user-supplied locations.
package pathutil

import (
	"os"
	"path/filepath"
)

// ResolveAbsolutePath converts a user-supplied path (the ws-config output
// location from a flag, env var, or config file) to an absolute path.
// A leading ~ expands to the home directory. Symlinks in the existing
// portion of the path are resolved, then any not-yet-existing components
// are appended, so an output file inside a junction-point folder lands
// where the user expects even before its directory is created.
func ResolveAbsolutePath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = home + path[1:]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	// Fast path: the whole path exists.
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		return resolved, nil
	}

	// Find the deepest existing ancestor, resolve it, then append the
	// non-existent remainder.
	current := absPath
	var remainder []string

	for {
		if _, err := os.Stat(current); err == nil {
			resolved, err := filepath.EvalSymlinks(current)
			if err != nil {
				resolved = current
			}
			for i := len(remainder) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, remainder[i])
			}
			return resolved, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return absPath, nil
		}
		remainder = append(remainder, filepath.Base(current))
		current = parent
	}
}
