// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default provider endpoints.
const (
	DefaultOllamaBaseURL   = "http://localhost:11434/v1"
	DefaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
)

// DefaultCommitPrompt asks for a single conventional-commit line.
// The {diff} placeholder is replaced with the staged diff.
const DefaultCommitPrompt = `Generate a concise git commit message for the following diff.
Respond with a single line in conventional commit style (e.g. "fix: handle empty input"),
starting lower-case, at most 72 characters, with no surrounding quotes or explanation.

{diff}`

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Providers: map[string]ProviderConfig{
			"ollama": {
				BaseURL: DefaultOllamaBaseURL,
			},
			"deepseek": {
				BaseURL:   DefaultDeepSeekBaseURL,
				APIKeyEnv: "DEEPSEEK_API_KEY",
			},
		},
		Commands: CommandsConfig{
			GitOperations: DefaultModelConfig(),
			Conversation:  DefaultModelConfig(),
			ErrorAnalysis: DefaultModelConfig(),
		},
		Git: GitConfig{
			CommitPrompt: DefaultCommitPrompt,
		},
		Summarize: DefaultSummarizeConfig(),
		Global: GlobalConfig{
			LogLevel: "info",
		},
	}
}

// DefaultModelConfig returns the default provider/model pair.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Provider: "ollama",
		Model:    "llama3.2",
	}
}

// DefaultSummarizeConfig returns default pipeline bounds.
func DefaultSummarizeConfig() SummarizeConfig {
	return SummarizeConfig{
		MaxUnitSize: 8 * 1024,
		Concurrency: 3,
		UnitTimeout: 60 * time.Second,
	}
}

// GetDefaultConfigPath returns the default global config file path.
func GetDefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
}

// GetProjectConfigPath returns the project config file path.
func GetProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		projectRoot = "."
	}
	return filepath.Join(projectRoot, ProjectConfigFile)
}
