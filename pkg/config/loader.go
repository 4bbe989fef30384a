// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "DEVAI"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".devai.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".devai"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.devai/config.yaml)
// 3. Project Config (./.devai.yaml)
// 4. Environment Variables (DEVAI_*)
func (l *Loader) Load() (*Config, error) {
	// Provider API keys may live in a project .env file.
	// Ignore errors; the file is optional.
	_ = godotenv.Load(filepath.Join(l.root(), ".env"))

	// Start with defaults
	cfg := DefaultConfig()

	// Load global config if not skipped
	if !l.skipGlobal {
		globalCfg, err := l.loadGlobalConfig()
		if err == nil {
			mergeConfig(cfg, globalCfg)
		}
		// Ignore errors for global config (it's optional)
	}

	// Load project config
	projectCfg, err := l.loadProjectConfig()
	if err == nil {
		mergeConfig(cfg, projectCfg)
	}
	// Ignore errors for project config (it's optional)

	// Apply environment overrides
	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

func (l *Loader) root() string {
	if l.projectRoot == "" {
		return "."
	}
	return l.projectRoot
}

// loadGlobalConfig loads global config from $HOME/.devai/config.yaml.
func (l *Loader) loadGlobalConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	globalPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
	return l.LoadFromPath(globalPath)
}

// loadProjectConfig loads project config from ./.devai.yaml.
func (l *Loader) loadProjectConfig() (*Config, error) {
	projectPath := filepath.Join(l.root(), ProjectConfigFile)
	return l.LoadFromPath(projectPath)
}

// applyEnvOverrides applies environment variable overrides.
// Format: DEVAI_SECTION__KEY=value
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DEVAI_COMMANDS__GIT_OPERATIONS__MODEL"); v != "" {
		cfg.Commands.GitOperations.Model = v
	}
	if v := os.Getenv("DEVAI_COMMANDS__GIT_OPERATIONS__PROVIDER"); v != "" {
		cfg.Commands.GitOperations.Provider = v
	}
	if v := os.Getenv("DEVAI_SUMMARIZE__UNIT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &ConfigError{Field: "summarize.unit_timeout", Err: err}
		}
		cfg.Summarize.UnitTimeout = d
	}
	if v := os.Getenv("DEVAI_GLOBAL__LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	return nil
}

// mergeConfig merges src into dst (src overrides dst).
func mergeConfig(dst, src *Config) {
	for name, pc := range src.Providers {
		if dst.Providers == nil {
			dst.Providers = map[string]ProviderConfig{}
		}
		merged := dst.Providers[name]
		if pc.BaseURL != "" {
			merged.BaseURL = pc.BaseURL
		}
		if pc.APIKeyEnv != "" {
			merged.APIKeyEnv = pc.APIKeyEnv
		}
		dst.Providers[name] = merged
	}

	mergeModel(&dst.Commands.GitOperations, src.Commands.GitOperations)
	mergeModel(&dst.Commands.Conversation, src.Commands.Conversation)
	mergeModel(&dst.Commands.ErrorAnalysis, src.Commands.ErrorAnalysis)

	if src.Git.CommitPrompt != "" {
		dst.Git.CommitPrompt = src.Git.CommitPrompt
	}

	if src.Summarize.MaxUnitSize > 0 {
		dst.Summarize.MaxUnitSize = src.Summarize.MaxUnitSize
	}
	if src.Summarize.Concurrency > 0 {
		dst.Summarize.Concurrency = src.Summarize.Concurrency
	}
	if src.Summarize.UnitTimeout > 0 {
		dst.Summarize.UnitTimeout = src.Summarize.UnitTimeout
	}

	if src.Global.LogLevel != "" {
		dst.Global.LogLevel = src.Global.LogLevel
	}
}

func mergeModel(dst *ModelConfig, src ModelConfig) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return "config error in " + e.Path + ": " + e.Err.Error()
	}
	if e.Field != "" {
		return "config error for " + e.Field + ": " + e.Err.Error()
	}
	return "config error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
