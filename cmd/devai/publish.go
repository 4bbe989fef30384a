// Copyright 2026 DevAI Toolkit. All rights reserved.
// Licensed under the Apache License, Version 2.0.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/git"
)

// publishCmd publishes the current project based on its type.
var publishCmd = &cobra.Command{
	Use:   "publish <version>",
	Short: "Publish the current project",
	Long: `Publish the current project. The project type is detected from the
working directory:

  go.mod      tag the release and push the tag
  Cargo.toml  run 'cargo publish'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPublish(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(ctx context.Context, version string) error {
	version = strings.TrimPrefix(version, "v")
	if version == "" {
		return fmt.Errorf("version must not be empty")
	}

	switch {
	case fileExists("go.mod"):
		return publishGo(ctx, version)
	case fileExists("Cargo.toml"):
		return publishCargo(ctx, version)
	default:
		return fmt.Errorf("no go.mod or Cargo.toml found; don't know how to publish this project")
	}
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// publishGo tags the release and pushes the tag. Go modules are
// published by tag; the proxy picks them up from the remote.
func publishGo(ctx context.Context, version string) error {
	repo := git.Default()
	if !repo.IsRepo(ctx) {
		return fmt.Errorf("not in a git repository")
	}

	status, err := repo.Status(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(status) != "" {
		return fmt.Errorf("working tree has uncommitted changes; commit or stash before publishing")
	}

	tag := "v" + version
	if !confirm(fmt.Sprintf("Tag and push %s?", tag)) {
		fmt.Println("Publish cancelled")
		return nil
	}

	runner := git.NewRunner("")
	if _, err := runner.Run(ctx, "git", "tag", "-a", tag, "-m", "Release "+tag); err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	if _, err := runner.Run(ctx, "git", "push", "origin", tag); err != nil {
		return fmt.Errorf("failed to push tag: %w", err)
	}

	fmt.Printf("✓ Published %s\n", tag)
	return nil
}

func publishCargo(ctx context.Context, version string) error {
	if !git.CommandAvailable("cargo") {
		return fmt.Errorf("cargo not found; install the Rust toolchain to publish crates")
	}

	if !confirm(fmt.Sprintf("Publish version %s to crates.io?", version)) {
		fmt.Println("Publish cancelled")
		return nil
	}

	runner := git.NewRunner("")
	if out, err := runner.Run(ctx, "cargo", "publish"); err != nil {
		return fmt.Errorf("cargo publish failed: %w", err)
	} else if len(out) > 0 {
		fmt.Print(string(out))
	}

	fmt.Printf("✓ Published %s\n", version)
	return nil
}
