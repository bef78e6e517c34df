package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.yaml ->
// ./configs/arkanoid.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error;
// the fallback locations fail silently to the next candidate.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/arkanoid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTheme loads the renderer theme.
// Search order: customPath -> ~/.arkanoid/configs/theme.yaml ->
// ./configs/theme.yaml -> embedded default.
// Theme loading is best-effort by design: callers log the error and
// continue with DefaultTheme, so a missing theme degrades the display
// instead of stopping the game.
func LoadTheme(customPath string) (Theme, error) {
	var th Theme

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("failed to read theme %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &th); err != nil {
			return DefaultTheme(), fmt.Errorf("failed to parse theme %s: %w", customPath, err)
		}
		return th, nil
	}

	if userCfgPath := userConfigPath("theme.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &th); err == nil {
				return th, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/theme.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &th); err == nil {
			return th, nil
		}
	}

	if err := yaml.Unmarshal(defaultThemeYAML, &th); err != nil {
		return DefaultTheme(), nil
	}
	return th, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs", filename)
}
