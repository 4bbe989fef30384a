// Copyright 2026 DevAI Toolkit. All rights reserved.
// Licensed under the Apache License, Version 2.0.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/config"
	"github.com/devai-toolkit/devai/pkg/shell"
)

// fixCmd analyzes the last failed shell command and suggests a fix.
var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Analyze the last shell error and suggest a fix",
	Long: `Analyze the most recent failed command from shell history and ask
the AI for a fix. Suggested commands can be copied to the clipboard.

Extra arguments are passed to the model as additional context, e.g.
'devai fix it said permission denied'.

With --startup, analyzes shell startup errors captured by 'devai setup
--advanced' instead of command history.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadApp()
		if err != nil {
			return err
		}

		gateway, model, err := ai.ForCommand(cfg, config.CommandErrorAnalysis)
		if err != nil {
			return err
		}

		prompt, err := buildFixPrompt(fixStartupFlag)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			prompt += "\n\nAdditional context from the user: " + strings.Join(args, " ")
		}

		fmt.Println("Analyzing error...")
		response, err := gateway.Complete(cmd.Context(), model.Model, prompt)
		if err != nil {
			return err
		}
		fmt.Println(response)

		return offerCommands(shell.ExtractCommands(response))
	},
}

var fixStartupFlag bool

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().BoolVar(&fixStartupFlag, "startup", false, "Analyze shell startup errors instead of command history")
}

// historyWindow is how many recent commands are sent as context.
const historyWindow = 20

func buildFixPrompt(startup bool) (string, error) {
	if startup {
		errors, err := shell.StartupErrors()
		if err != nil {
			return "", fmt.Errorf("%w; run 'devai setup --advanced' to enable startup error capture", err)
		}
		return fmt.Sprintf(`My shell printed these errors on startup (newest first):

%s

Explain the likely cause and suggest shell commands to fix it. Put any
commands to run in a fenced code block.`, strings.Join(errors, "\n")), nil
	}

	history, err := shell.History(historyWindow)
	if err != nil {
		return "", err
	}
	idx := shell.LastFailedIndex(history)
	if idx < 0 {
		return "", fmt.Errorf("no shell history found")
	}

	if shell.CurrentShell() == "zsh" && !shell.ZshExtendedHistoryEnabled() {
		fmt.Println("Tip: run 'devai setup' to enable zsh extended history for better error detection")
	}

	var recent []string
	for _, entry := range history {
		recent = append(recent, entry.Command)
	}

	return fmt.Sprintf(`This shell command appears to have failed:

%s

Recent command history for context:
%s

Explain what likely went wrong and suggest a corrected command. Put any
commands to run in a fenced code block.`, history[idx].Command, strings.Join(recent, "\n")), nil
}

// offerCommands lets the user pick one suggested command and copies it
// to the clipboard.
func offerCommands(commands []string) error {
	if len(commands) == 0 {
		return nil
	}

	options := append([]string{}, commands...)
	options = append(options, "None")
	choice := promptChoice("Copy a suggested command to the clipboard?", options)
	if choice < 0 || choice >= len(commands) {
		return nil
	}

	if err := shell.CopyToClipboard(commands[choice]); err != nil {
		return err
	}
	fmt.Println("✓ Copied to clipboard")
	return nil
}
