package ai

import (
	"github.com/devai-toolkit/devai/pkg/config"
)

// ForCommand builds the gateway client and model selection for one
// command type (git_operations, conversation, error_analysis).
func ForCommand(cfg *config.Config, commandType string) (*Client, config.ModelConfig, error) {
	provider, model, err := cfg.ForCommand(commandType)
	if err != nil {
		return nil, config.ModelConfig{}, err
	}
	return NewClient(provider.BaseURL, provider.APIKey()), model, nil
}
