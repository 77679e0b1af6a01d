// Package config holds process-wide settings: the vault location and the
// folder names inside it. Values are loaded once and injected into the
// core as plain strings; nothing below this package reads settings
// storage directly.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	// Vault is the root folder of the note vault.
	Vault string `yaml:"vault"`

	// Folders names the subfolders used inside the vault.
	Folders FoldersConfig `yaml:"folders"`

	// DisabledTools lists MCP tool names to exclude from registration.
	DisabledTools []string `yaml:"disabled_tools,omitempty"`
}

// FoldersConfig names the vault subfolders.
type FoldersConfig struct {
	Journals  string `yaml:"journals"`
	Templates string `yaml:"templates"`
	Workouts  string `yaml:"workouts"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Folders: FoldersConfig{
			Journals:  "journals",
			Templates: "templates",
			Workouts:  "workouts",
		},
	}
}

// Load reads baseDir/config.yaml, applies defaults for missing values,
// then applies environment variable overrides:
//
//	REPVAULT_VAULT, REPVAULT_JOURNALS_FOLDER,
//	REPVAULT_TEMPLATES_FOLDER, REPVAULT_WORKOUTS_FOLDER
//
// A missing config file is not an error; defaults apply. The baseDir
// parameter allows tests to use t.TempDir() instead of ~/.repvault.
func Load(baseDir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(baseDir, "config.yaml"))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: defaults only.
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Folders.Journals == "" {
		cfg.Folders.Journals = def.Folders.Journals
	}
	if cfg.Folders.Templates == "" {
		cfg.Folders.Templates = def.Folders.Templates
	}
	if cfg.Folders.Workouts == "" {
		cfg.Folders.Workouts = def.Folders.Workouts
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("REPVAULT_VAULT"); v != "" {
		cfg.Vault = v
	}
	if v := os.Getenv("REPVAULT_JOURNALS_FOLDER"); v != "" {
		cfg.Folders.Journals = v
	}
	if v := os.Getenv("REPVAULT_TEMPLATES_FOLDER"); v != "" {
		cfg.Folders.Templates = v
	}
	if v := os.Getenv("REPVAULT_WORKOUTS_FOLDER"); v != "" {
		cfg.Folders.Workouts = v
	}
}
