// Package config handles loading taskdown.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/taskdown/document"
)

// DefaultSoonWindowDays is the diagnostics soon-window when unconfigured.
const DefaultSoonWindowDays = 7

// Config represents the taskdown.toml configuration file.
type Config struct {
	Format      Format      `toml:"format"`
	Diagnostics Diagnostics `toml:"diagnostics"`
}

// Format contains formatter-related configuration.
type Format struct {
	// Mode selects the default formatting mode: "raw" or "normalized".
	Mode string `toml:"mode"`
}

// Diagnostics contains diagnostics-related configuration.
type Diagnostics struct {
	// SoonWindowDays is how many days ahead "due soon" reports reach.
	SoonWindowDays int `toml:"soon-window-days"`
}

// Mode returns the configured format mode, defaulting to raw.
func (c *Config) Mode() (document.FormatMode, error) {
	if c.Format.Mode == "" {
		return document.FormatRaw, nil
	}
	mode := document.FormatMode(strings.ToLower(strings.TrimSpace(c.Format.Mode)))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid format mode %q: must be raw or normalized", c.Format.Mode)
	}
	return mode, nil
}

// SoonWindow returns the configured soon-window in days, defaulted.
func (c *Config) SoonWindow() int {
	if c.Diagnostics.SoonWindowDays <= 0 {
		return DefaultSoonWindowDays
	}
	return c.Diagnostics.SoonWindowDays
}

// Load loads configuration from dir and the global config file, with
// per-field project-over-global precedence. Returns an empty config if
// no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "taskdown.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskdown", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Format.Mode = mergeString(projectMeta.IsDefined("format", "mode"), projectCfg.Format.Mode, globalCfg.Format.Mode)
	if projectMeta.IsDefined("diagnostics", "soon-window-days") {
		merged.Diagnostics.SoonWindowDays = projectCfg.Diagnostics.SoonWindowDays
	} else if globalMeta.IsDefined("diagnostics", "soon-window-days") {
		merged.Diagnostics.SoonWindowDays = globalCfg.Diagnostics.SoonWindowDays
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
