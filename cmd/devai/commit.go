package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/ai"
	"github.com/devai-toolkit/devai/pkg/config"
	"github.com/devai-toolkit/devai/pkg/git"
	"github.com/devai-toolkit/devai/pkg/observability"
	"github.com/devai-toolkit/devai/pkg/summarize"
)

// commitCmd commits staged changes with a generated message.
var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit changes with an AI-generated message",
	Long: `Commit staged changes with an AI-generated commit message.

Large diffs are segmented and summarized concurrently before the final
message is composed; small diffs go to the provider in one call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommit(cmd.Context(), commitAllFlag)
	},
}

var commitAllFlag bool

func init() {
	rootCmd.AddCommand(commitCmd)
	commitCmd.Flags().BoolVarP(&commitAllFlag, "all", "a", false, "Stage all changes before committing")
}

func runCommit(ctx context.Context, all bool) error {
	repo := git.Default()
	if !repo.IsRepo(ctx) {
		return fmt.Errorf("not in a git repository")
	}

	cfg, log, err := loadApp()
	if err != nil {
		return err
	}

	gateway, model, err := ai.ForCommand(cfg, config.CommandGitOperations)
	if err != nil {
		return err
	}

	if all {
		fmt.Println("Staging all changes...")
		if err := repo.AddAll(ctx); err != nil {
			return err
		}
	}

	diffText, err := repo.StagedDiff(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diffText) == "" {
		fmt.Println("No staged changes to commit")
		return nil
	}

	fmt.Println("Generating commit message...")
	generator := summarize.NewGenerator(gateway, model.Model, cfg.Summarize, cfg.Git.CommitPrompt, log)
	message, err := generator.GenerateCommitMessage(ctx, diffText)
	if err != nil {
		log.Error("commit message generation failed", observability.Err(err))
		return err
	}
	message = strings.TrimSpace(message)

	fmt.Printf("Commit message: %s\n", message)
	if err := repo.Commit(ctx, message); err != nil {
		return err
	}
	fmt.Println("✓ Committed successfully!")
	return nil
}
