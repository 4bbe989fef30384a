// Package ai provides the completion gateway used by all devai commands.
// Providers are OpenAI-compatible chat-completion endpoints (Ollama, DeepSeek).
package ai

import (
	"context"
)

// Gateway is the opaque boundary to a text-completion provider.
// Implementations must tolerate arbitrary latency and free-text responses;
// callers bound calls with the context.
type Gateway interface {
	// Complete sends one prompt to the provider and returns the
	// completion text, or an error on transport/provider failure.
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// UserMessage creates a user-role message.
func UserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// AssistantMessage creates an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: "assistant", Content: content}
}

// ChatGateway extends Gateway with multi-turn conversation support,
// used by the interactive chat command.
type ChatGateway interface {
	Gateway

	// Chat sends a whole conversation and returns the next assistant turn.
	Chat(ctx context.Context, model string, messages []Message) (string, error)
}
