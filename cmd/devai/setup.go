// Copyright 2026 DevAI Toolkit. All rights reserved.
// Licensed under the Apache License, Version 2.0.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/shell"
)

// setupCmd configures the shell for better error detection.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure your shell for better error detection",
	Long: `Configure your shell so 'devai fix' can detect failed commands more
reliably.

For zsh this enables EXTENDED_HISTORY, which records timestamps per
command. With --advanced, startup errors are additionally captured to
~/.zsh_startup_errors.log so 'devai fix --startup' can analyze them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(setupAdvancedFlag)
	},
}

var setupAdvancedFlag bool

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().BoolVar(&setupAdvancedFlag, "advanced", false, "Also capture shell startup errors to a log file")
}

const extendedHistorySnippet = `
# Added by devai setup: record timestamps per command for error detection
setopt EXTENDED_HISTORY
setopt INC_APPEND_HISTORY
`

const startupCaptureSnippet = `
# Added by devai setup --advanced: capture startup errors for 'devai fix --startup'
exec 2> >(tee -a ~/.zsh_startup_errors.log >&2)
`

func runSetup(advanced bool) error {
	currentShell := shell.CurrentShell()
	if currentShell != "zsh" {
		fmt.Printf("Detected shell: %s\n", currentShell)
		fmt.Println("Setup currently supports zsh only. Bash and fish history work out of the box.")
		return nil
	}

	if shell.ZshExtendedHistoryEnabled() {
		fmt.Println("✓ zsh extended history is already enabled")
	} else {
		fmt.Println("zsh extended history is not enabled. It records timestamps per")
		fmt.Println("command, which lets 'devai fix' find the failed command reliably.")
		if confirm("Add EXTENDED_HISTORY to your ~/.zshrc?") {
			if err := appendToZshrc(extendedHistorySnippet); err != nil {
				return err
			}
			fmt.Println("✓ Added to ~/.zshrc (restart your shell to apply)")
		} else {
			fmt.Println("Skipped. You can add 'setopt EXTENDED_HISTORY' to ~/.zshrc manually.")
		}
	}

	if !advanced {
		return nil
	}

	fmt.Println()
	fmt.Println("Advanced setup redirects shell startup errors to")
	fmt.Println("~/.zsh_startup_errors.log for 'devai fix --startup'.")
	if !confirm("Add startup error capture to your ~/.zshrc?") {
		fmt.Println("Skipped")
		return nil
	}
	if err := appendToZshrc(startupCaptureSnippet); err != nil {
		return err
	}
	fmt.Println("✓ Added to ~/.zshrc (restart your shell to apply)")
	return nil
}

func appendToZshrc(snippet string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not determine home directory: %w", err)
	}

	path := filepath.Join(home, ".zshrc")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(snippet); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}
	return nil
}
