// Package config handles configuration loading and validation
package config

import (
	"fmt"
)

const (
	// MaxConcurrency is the maximum allowed summarization fan-out.
	MaxConcurrency = 16
	// MinUnitSize is the smallest usable request-size ceiling.
	MinUnitSize = 512
)

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}
	for name, p := range c.Providers {
		if p.BaseURL == "" {
			return fmt.Errorf("providers[%s]: base_url is required", name)
		}
	}

	for _, ct := range []string{CommandGitOperations, CommandConversation, CommandErrorAnalysis} {
		if _, _, err := c.ForCommand(ct); err != nil {
			return fmt.Errorf("commands.%s: %w", ct, err)
		}
	}

	if err := c.Summarize.Validate(); err != nil {
		return fmt.Errorf("summarize config: %w", err)
	}

	return nil
}

// Validate validates summarization bounds.
func (s SummarizeConfig) Validate() error {
	if s.MaxUnitSize < MinUnitSize {
		return fmt.Errorf("max_unit_size must be at least %d, got %d", MinUnitSize, s.MaxUnitSize)
	}
	if s.Concurrency < 1 || s.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", MaxConcurrency, s.Concurrency)
	}
	if s.UnitTimeout <= 0 {
		return fmt.Errorf("unit_timeout must be positive, got %s", s.UnitTimeout)
	}
	return nil
}
