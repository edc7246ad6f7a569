package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-editable CLI settings stored in
// ~/.config/barberia/config.yaml.
type Config struct {
	DefaultServer string `yaml:"default_server,omitempty"`
	// Viewport forces the layout class ("mobile" or "desktop"); empty
	// means detect from the terminal.
	Viewport string `yaml:"viewport,omitempty"`
	// LogFormat and LogLevel feed the global logger ("text"/"json",
	// "debug".."error").
	LogFormat string `yaml:"log_format,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	// ImageMaxWidth and ImageQuality control client-side recompression
	// of picked images. Zero values fall back to the media defaults.
	ImageMaxWidth int `yaml:"image_max_width,omitempty"`
	ImageQuality  int `yaml:"image_quality,omitempty"`
}

// ConfigDir returns the config directory (~/.config/barberia/ or platform
// equivalent). Can be overridden with BARBERIA_CONFIG_DIR env var (for testing).
func ConfigDir() (string, error) {
	if dir := os.Getenv("BARBERIA_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "barberia"), nil
}

// ConfigPath returns the path to config.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadConfig reads the CLI config from disk. Returns empty config if not found.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes the CLI config to disk.
func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
