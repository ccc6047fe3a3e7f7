// Package storage persists gridboard preferences.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName  = "gridboard"
	dbSubdir = "db"
)

// dataHome returns the per-user data root for goos: Application Support on
// macOS, %APPDATA% on Windows and $XDG_DATA_HOME (or ~/.local/share) elsewhere.
func dataHome(goos string) (string, error) {
	var env string
	var fallback []string
	switch goos {
	case "darwin":
		fallback = []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	default:
		env, fallback = "XDG_DATA_HOME", []string{".local", "share"}
	}

	if env != "" {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// DataDir returns the gridboard directory under the platform data root,
// creating it if needed.
func DataDir() (string, error) {
	root, err := dataHome(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(root, appName))
}

// DatabaseDir resolves where the preferences database lives. A non-empty
// override (the --db flag or GRIDBOARD_DB) is used as is; otherwise the
// database goes under DataDir. The directory is created either way.
func DatabaseDir(override string) (string, error) {
	if override != "" {
		return ensureDir(override)
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dataDir, dbSubdir))
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
