package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/config"
	"github.com/devai-toolkit/devai/pkg/observability"
	"github.com/devai-toolkit/devai/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devai",
	Short: "AI-assisted git workflows",
	Long: `devai - AI-assisted development workflows.

Generates commit messages from staged diffs, pushes and publishes
projects, and triages shell errors, delegating language understanding
to a configured completion provider (Ollama, DeepSeek).`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// loadApp loads configuration and builds the logger shared by commands.
func loadApp() (*config.Config, observability.Logger, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, observability.NewLogger(cfg.Global.LogLevel), nil
}

// confirm asks a yes/no question on stdin; anything but y/yes is no.
func confirm(message string) bool {
	fmt.Printf("%s (y/N) ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// promptChoice prints numbered options and reads a selection from
// stdin. Returns -1 when the input is empty or invalid.
func promptChoice(prompt string, options []string) int {
	fmt.Println(prompt)
	for i, opt := range options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}
	fmt.Print("> ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(options) {
		return -1
	}
	return n - 1
}
