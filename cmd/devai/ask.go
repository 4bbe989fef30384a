package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/config"
)

// askCmd sends one question to the conversation model.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadApp()
		if err != nil {
			return err
		}

		gateway, model, err := ai.ForCommand(cfg, config.CommandConversation)
		if err != nil {
			return err
		}

		response, err := gateway.Complete(cmd.Context(), model.Model, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(response)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
