// Package config loads and writes the .sysmon.yaml configuration file.
//
// Configuration only affects the CLI front end: the embeddable core in
// pkg/sysmon receives its two presentation scalars through Initialize and
// never reads files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/statuskit/sysmon/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".sysmon.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/sysmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .sysmon.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// PollIntervalMs is the suggested sampling interval in milliseconds.
	// Only 'sysmon watch' enforces it; the core library treats it as
	// advisory.
	PollIntervalMs int `yaml:"poll_interval_ms" mapstructure:"poll_interval_ms"`

	// UseIcons selects glyph labels instead of text labels. Requires a
	// Nerd Font in the consuming status bar or terminal.
	UseIcons bool `yaml:"use_icons" mapstructure:"use_icons"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		PollIntervalMs: 2000,
		UseIcons:       false,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'sysmon init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
//  1. Explicit path (from --config flag)
//  2. .sysmon.yaml in the current directory
//  3. .sysmon.yaml in parent directories (stops at home)
//  4. ~/.config/sysmon/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if none exists.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// Walk up to parent directories, stopping at home.
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && parent == home {
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	// Global config
	if home != "" {
		globalPath := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalPath); err == nil {
			return globalPath, nil
		}
	}

	return "", nil
}

// LoadOrDefault resolves the config via Find and loads it, falling back to
// DefaultConfig when no file exists anywhere in the search path.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the config as YAML to the given path, creating parent
// directories as needed.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory: "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file: "+path,
			"Check file permissions")
	}
	return nil
}

// setDefaults seeds viper with defaults so partial config files merge
// cleanly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("poll_interval_ms", 2000)
	v.SetDefault("use_icons", false)
	v.SetDefault("output.color", "auto")
}

// parseConfig unmarshals and validates a loaded viper instance.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if cfg.PollIntervalMs < 0 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("poll_interval_ms must be non-negative, got %d", cfg.PollIntervalMs),
			"Set poll_interval_ms to 0 or a positive number of milliseconds in "+path)
	}

	switch cfg.Output.Color {
	case "", "auto", "always", "never":
	default:
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color must be auto, always, or never, got %q", cfg.Output.Color),
			"Fix output.color in "+path)
	}

	return cfg, nil
}
