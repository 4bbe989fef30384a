// Copyright 2026 DevAI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}

	if cfg.Providers["ollama"].BaseURL != DefaultOllamaBaseURL {
		t.Errorf("ollama base URL = %q", cfg.Providers["ollama"].BaseURL)
	}
	if cfg.Providers["deepseek"].APIKeyEnv != "DEEPSEEK_API_KEY" {
		t.Errorf("deepseek api key env = %q", cfg.Providers["deepseek"].APIKeyEnv)
	}
	if cfg.Summarize.MaxUnitSize != 8*1024 {
		t.Errorf("max unit size = %d", cfg.Summarize.MaxUnitSize)
	}
	if cfg.Summarize.Concurrency != 3 {
		t.Errorf("concurrency = %d", cfg.Summarize.Concurrency)
	}
	if cfg.Summarize.UnitTimeout != 60*time.Second {
		t.Errorf("unit timeout = %s", cfg.Summarize.UnitTimeout)
	}
}

func TestForCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Commands.ErrorAnalysis = ModelConfig{Provider: "deepseek", Model: "deepseek-chat"}

	provider, model, err := cfg.ForCommand(CommandErrorAnalysis)
	if err != nil {
		t.Fatalf("ForCommand() error: %v", err)
	}
	if provider.BaseURL != DefaultDeepSeekBaseURL {
		t.Errorf("provider base URL = %q", provider.BaseURL)
	}
	if model.Model != "deepseek-chat" {
		t.Errorf("model = %q", model.Model)
	}

	if _, _, err := cfg.ForCommand("no_such_command"); err == nil {
		t.Error("expected error for unknown command type")
	}

	cfg.Commands.Conversation.Provider = "missing"
	if _, _, err := cfg.ForCommand(CommandConversation); err == nil {
		t.Error("expected error for unconfigured provider")
	}
}

func TestProviderAPIKey(t *testing.T) {
	t.Setenv("TEST_PROVIDER_KEY", "sk-test")

	p := ProviderConfig{BaseURL: "http://x", APIKeyEnv: "TEST_PROVIDER_KEY"}
	if got := p.APIKey(); got != "sk-test" {
		t.Errorf("APIKey() = %q", got)
	}

	keyless := ProviderConfig{BaseURL: "http://x"}
	if got := keyless.APIKey(); got != "" {
		t.Errorf("keyless APIKey() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"no providers", func(c *Config) { c.Providers = nil }, true},
		{"provider without base url", func(c *Config) {
			c.Providers["ollama"] = ProviderConfig{}
		}, true},
		{"route to missing provider", func(c *Config) {
			c.Commands.GitOperations.Provider = "nope"
		}, true},
		{"unit size too small", func(c *Config) {
			c.Summarize.MaxUnitSize = 100
		}, true},
		{"zero concurrency", func(c *Config) {
			c.Summarize.Concurrency = 0
		}, true},
		{"concurrency over cap", func(c *Config) {
			c.Summarize.Concurrency = MaxConcurrency + 1
		}, true},
		{"non-positive timeout", func(c *Config) {
			c.Summarize.UnitTimeout = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoaderProjectOverrides(t *testing.T) {
	dir := t.TempDir()
	project := `
providers:
  ollama:
    base_url: http://remote:11434/v1
commands:
  git_operations:
    model: qwen2.5-coder
summarize:
  max_unit_size: 16384
  concurrency: 5
`
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(project), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().WithProjectRoot(dir).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Providers["ollama"].BaseURL != "http://remote:11434/v1" {
		t.Errorf("base URL not overridden: %q", cfg.Providers["ollama"].BaseURL)
	}
	// Partial override keeps the default provider.
	if cfg.Commands.GitOperations.Provider != "ollama" {
		t.Errorf("provider = %q", cfg.Commands.GitOperations.Provider)
	}
	if cfg.Commands.GitOperations.Model != "qwen2.5-coder" {
		t.Errorf("model = %q", cfg.Commands.GitOperations.Model)
	}
	if cfg.Summarize.MaxUnitSize != 16384 {
		t.Errorf("max unit size = %d", cfg.Summarize.MaxUnitSize)
	}
	if cfg.Summarize.Concurrency != 5 {
		t.Errorf("concurrency = %d", cfg.Summarize.Concurrency)
	}
	// Untouched fields keep defaults.
	if cfg.Summarize.UnitTimeout != 60*time.Second {
		t.Errorf("unit timeout = %s", cfg.Summarize.UnitTimeout)
	}
	if cfg.Git.CommitPrompt != DefaultCommitPrompt {
		t.Error("commit prompt should keep the default")
	}
}

func TestLoaderEnvOverrides(t *testing.T) {
	t.Setenv("DEVAI_COMMANDS__GIT_OPERATIONS__MODEL", "env-model")
	t.Setenv("DEVAI_SUMMARIZE__UNIT_TIMEOUT", "90s")
	t.Setenv("DEVAI_GLOBAL__LOG_LEVEL", "debug")

	cfg, err := NewLoader().WithProjectRoot(t.TempDir()).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Commands.GitOperations.Model != "env-model" {
		t.Errorf("model = %q", cfg.Commands.GitOperations.Model)
	}
	if cfg.Summarize.UnitTimeout != 90*time.Second {
		t.Errorf("unit timeout = %s", cfg.Summarize.UnitTimeout)
	}
	if cfg.Global.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.Global.LogLevel)
	}
}

func TestLoaderBadEnvDuration(t *testing.T) {
	t.Setenv("DEVAI_SUMMARIZE__UNIT_TIMEOUT", "not-a-duration")

	if _, err := NewLoader().WithProjectRoot(t.TempDir()).SkipGlobal().Load(); err == nil {
		t.Error("expected error for malformed duration")
	}
}

func TestLoaderMissingFilesUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().WithProjectRoot(t.TempDir()).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Providers["ollama"].BaseURL != DefaultOllamaBaseURL {
		t.Error("missing config files should fall back to defaults")
	}
}
