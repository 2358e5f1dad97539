// Package configpaths resolves the candidate configuration file locations
// the bridge searches, in the same working-directory / XDG-home / system-wide
// priority order across JSON, YAML, and TOML.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "gamepad-bridge"), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gamepad-bridge"), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "gamepad-bridge"), nil
		}
		return "", errors.New("HOME not set")
	}
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching
// loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch ext := filepath.Ext(userPath); ext {
		case ".json":
			add(&jsonPaths, userPath)
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	add(&jsonPaths, filepath.Join(wd, "gamepad-bridge.json"))
	add(&yamlPaths, filepath.Join(wd, "gamepad-bridge.yaml"))
	add(&yamlPaths, filepath.Join(wd, "gamepad-bridge.yml"))
	add(&tomlPaths, filepath.Join(wd, "gamepad-bridge.toml"))

	if dir, err := DefaultConfigDir(); err == nil {
		add(&jsonPaths, filepath.Join(dir, "config.json"))
		add(&yamlPaths, filepath.Join(dir, "config.yaml"))
		add(&yamlPaths, filepath.Join(dir, "config.yml"))
		add(&tomlPaths, filepath.Join(dir, "config.toml"))
	}

	if runtime.GOOS != "windows" {
		add(&jsonPaths, "/etc/gamepad-bridge/config.json")
		add(&yamlPaths, "/etc/gamepad-bridge/config.yaml")
		add(&yamlPaths, "/etc/gamepad-bridge/config.yml")
		add(&tomlPaths, "/etc/gamepad-bridge/config.toml")
	}

	return
}
