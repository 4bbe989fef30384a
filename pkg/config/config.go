// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for devai.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.devai/config.yaml
// 3. Project Config: ./.devai.yaml
// 4. Environment Variables: DEVAI_*
//
// Provider API keys are never stored in config files; each provider names
// the environment variable that holds its key. A .env file in the project
// root is honored as a convenience.
package config

import (
	"os"
	"time"

	"github.com/devai-toolkit/devai/pkg/errors"
)

// Command types used to route completion calls to a provider/model pair.
const (
	CommandGitOperations = "git_operations"
	CommandConversation  = "conversation"
	CommandErrorAnalysis = "error_analysis"
)

// Config represents the complete application configuration.
type Config struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
	Commands  CommandsConfig            `yaml:"commands"`
	Git       GitConfig                 `yaml:"git"`
	Summarize SummarizeConfig           `yaml:"summarize"`
	Global    GlobalConfig              `yaml:"global"`
}

// ProviderConfig describes one completion provider endpoint.
type ProviderConfig struct {
	// BaseURL is the root of an OpenAI-compatible API, e.g.
	// http://localhost:11434/v1 for Ollama.
	BaseURL string `yaml:"base_url"`
	// APIKeyEnv names the environment variable holding the API key.
	// Empty for providers that need no key (local Ollama).
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
}

// APIKey resolves the provider's API key from the environment.
func (p ProviderConfig) APIKey() string {
	if p.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(p.APIKeyEnv)
}

// CommandsConfig routes each command type to a provider and model.
type CommandsConfig struct {
	GitOperations ModelConfig `yaml:"git_operations"`
	Conversation  ModelConfig `yaml:"conversation"`
	ErrorAnalysis ModelConfig `yaml:"error_analysis"`
}

// ModelConfig selects a provider/model pair for one command type.
type ModelConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// GitConfig contains git workflow settings.
type GitConfig struct {
	// CommitPrompt is the instruction template for single-call commit
	// message generation. The {diff} placeholder is replaced with the
	// staged diff.
	CommitPrompt string `yaml:"commit_prompt"`
}

// SummarizeConfig bounds the large-diff summarization pipeline.
type SummarizeConfig struct {
	// MaxUnitSize is the request-size ceiling in bytes. Diffs larger than
	// this are segmented; each segment's completion request stays under it.
	MaxUnitSize int `yaml:"max_unit_size"`
	// Concurrency limits in-flight completion calls during fan-out.
	Concurrency int `yaml:"concurrency"`
	// UnitTimeout is the per-segment deadline.
	UnitTimeout time.Duration `yaml:"unit_timeout"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// ForCommand resolves the provider and model for a command type.
func (c *Config) ForCommand(commandType string) (ProviderConfig, ModelConfig, error) {
	var mc ModelConfig
	switch commandType {
	case CommandGitOperations:
		mc = c.Commands.GitOperations
	case CommandConversation:
		mc = c.Commands.Conversation
	case CommandErrorAnalysis:
		mc = c.Commands.ErrorAnalysis
	default:
		return ProviderConfig{}, ModelConfig{}, errors.ConfigError("unknown command type: "+commandType, nil)
	}

	pc, ok := c.Providers[mc.Provider]
	if !ok {
		return ProviderConfig{}, ModelConfig{}, errors.ConfigError("provider not configured: "+mc.Provider, nil)
	}
	return pc, mc, nil
}
