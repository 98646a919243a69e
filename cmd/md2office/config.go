package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hotpaste/go-md2office/internal/fileutil"
	"github.com/hotpaste/go-md2office/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// configName is the bare name searched in standard locations.
const configName = "md2office"

// Config holds all settings for the paste pipeline. The hotkey and notify
// fields are configuration surface for platform front ends (hotkey
// listeners, tray notifiers); the CLI itself does not act on them.
type Config struct {
	Hotkey          string `yaml:"hotkey"`
	PandocPath      string `yaml:"pandocPath"`
	ReferenceDocx   string `yaml:"referenceDocx"`
	SaveDir         string `yaml:"saveDir"`
	KeepFile        bool   `yaml:"keepFile"`
	InsertTarget    string `yaml:"insertTarget"` // auto|sheet|document
	Notify          bool   `yaml:"notify"`
	EnableExcel     bool   `yaml:"enableExcel"`
	ExcelKeepFormat bool   `yaml:"excelKeepFormat"`
	AutoOpenOnNoApp bool   `yaml:"autoOpenOnNoApp"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	saveDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		saveDir = filepath.Join(home, "Documents", "md2office")
	}
	return &Config{
		Hotkey:          "ctrl+b",
		PandocPath:      "pandoc",
		SaveDir:         saveDir,
		KeepFile:        false,
		InsertTarget:    "auto",
		Notify:          true,
		EnableExcel:     true,
		ExcelKeepFormat: true,
		AutoOpenOnNoApp: true,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
// Settings absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	return loadConfigFile(configPath)
}

// LoadConfigOrDefault looks for a config in the standard locations and
// falls back to the defaults when none exists.
func LoadConfigOrDefault() (*Config, error) {
	configPath, err := resolveConfigPath(configName)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return loadConfigFile(configPath)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	// The save directory may reference environment variables.
	cfg.SaveDir = os.ExpandEnv(cfg.SaveDir)

	return cfg, nil
}

// SaveConfig writes the configuration as YAML to the given path, creating
// parent directories as needed.
func SaveConfig(cfg *Config, path string) error {
	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/md2office/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "md2office", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
