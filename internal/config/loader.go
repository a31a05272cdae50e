package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDash loads the game configuration.
// Search order: customPath -> ~/.dash/configs/dash.yaml -> ./configs/dash.yaml -> embedded default
func LoadDash(customPath string) (DashConfig, error) {
	cfg := DefaultDashConfig()
	found, err := loadYAML(customPath, "dash.yaml", &cfg)
	if err != nil {
		return DefaultDashConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		if customPath != "" {
			return DefaultDashConfig(), fmt.Errorf("invalid config %s: %w", found, err)
		}
		// A broken user or local file must not take the game down.
		return DefaultDashConfig(), nil
	}
	return cfg, nil
}

// LoadLevels loads the level table.
// Search order: customPath -> ~/.dash/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadLevels(customPath string) (LevelTable, error) {
	var table LevelTable
	found, err := loadYAML(customPath, "levels.yaml", &table)
	if err != nil {
		return DefaultLevels(), err
	}
	if table.Len() == 0 {
		if customPath != "" {
			return DefaultLevels(), fmt.Errorf("level table %s has no levels", found)
		}
		return DefaultLevels(), nil
	}
	return table, nil
}

// loadYAML decodes the first readable candidate into out and returns the
// path it came from. Only a failing custom path is reported as an error;
// user and local files that fail to parse are skipped.
func loadYAML(customPath, filename string, out any) (string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return path, nil
		}
	}

	// Use embedded default YAML; out already holds hardcoded defaults if this fails
	_ = yaml.Unmarshal(GetDefaultYAML(filename), out)
	return "embedded:" + filename, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dash", "configs", filename)
}
