package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/config"
)

// chatCmd starts a minimal line-based chat session.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadApp()
		if err != nil {
			return err
		}

		gateway, model, err := ai.ForCommand(cfg, config.CommandConversation)
		if err != nil {
			return err
		}

		fmt.Println("Starting chat session... (type /exit or /quit to leave)")
		fmt.Println("Available commands: /help, /commit, /push, /exit, /quit")
		fmt.Println()

		var conversation []ai.Message
		reader := bufio.NewReader(os.Stdin)

		for {
			fmt.Print("You: ")
			input, err := reader.ReadString('\n')
			if err != nil {
				return nil // EOF ends the session
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}

			if strings.HasPrefix(input, "/") {
				if done := handleChatCommand(cmd, input); done {
					return nil
				}
				continue
			}

			conversation = append(conversation, ai.UserMessage(input))
			response, err := gateway.Chat(cmd.Context(), model.Model, conversation)
			if err != nil {
				fmt.Printf("Error getting AI response: %v\n", err)
				continue
			}
			fmt.Printf("AI: %s\n", response)
			conversation = append(conversation, ai.AssistantMessage(response))
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// handleChatCommand runs a slash command; returns true when the session
// should end.
func handleChatCommand(cmd *cobra.Command, input string) bool {
	switch input {
	case "/exit", "/quit":
		fmt.Println("Goodbye!")
		return true
	case "/help":
		fmt.Println("Chat Commands:")
		fmt.Println("  /help          Show this help message")
		fmt.Println("  /commit        Commit changes with AI-generated message")
		fmt.Println("  /commit all    Stage all changes and commit")
		fmt.Println("  /push          Push changes to remote repository")
		fmt.Println("  /push force    Force push changes")
		fmt.Println("  /exit, /quit   Exit the chat session")
	case "/commit":
		if err := runCommit(cmd.Context(), false); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	case "/commit all":
		if err := runCommit(cmd.Context(), true); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	case "/push":
		if err := runPush(cmd.Context(), false); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	case "/push force":
		if err := runPush(cmd.Context(), true); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	default:
		fmt.Printf("Unknown command: %s. Type /help for available commands.\n", input)
	}
	return false
}
