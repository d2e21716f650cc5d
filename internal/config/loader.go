package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const colorSnakeFile = "colorsnake.yaml"

// LoadColorSnake loads the colorsnake configuration.
// Search order: customPath -> ~/.colorsnake/configs/colorsnake.yaml ->
// ./configs/colorsnake.yaml -> embedded default.
// Files only need to set the fields they change; the rest keep defaults.
func LoadColorSnake(customPath string) (ColorSnakeConfig, error) {
	cfg := DefaultColorSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(colorSnakeFile), filepath.Join("configs", colorSnakeFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg = DefaultColorSnakeConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	var embedded = DefaultColorSnakeConfig()
	if err := yaml.Unmarshal(defaultColorSnakeYAML, &embedded); err != nil {
		return DefaultColorSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg ColorSnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorsnake", "configs", filename)
}
