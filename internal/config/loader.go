package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Load when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceDefault  = "default"
)

// localConfigPath is the working-directory config file.
var localConfigPath = "quest.yaml"

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.tilequest/quest.yaml -> ./quest.yaml -> embedded default -> Default().
// Fields a file leaves out keep their default values.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(ExpandHome(customPath))
		if err != nil {
			return Default(), "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the working directory
	for _, path := range []string{userConfigPath("quest.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultQuestYAML, &cfg); err != nil {
		return Default(), SourceDefault, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilequest", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
