package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devai-toolkit/devai/pkg/git"
	"github.com/devai-toolkit/devai/pkg/hosting"
)

// pushCmd pushes to the remote, handling uncommitted changes, missing
// remotes and missing upstreams along the way.
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push changes to the remote repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPush(cmd.Context(), pushForceFlag)
	},
}

var pushForceFlag bool

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().BoolVarP(&pushForceFlag, "force", "f", false, "Force push")
}

func runPush(ctx context.Context, force bool) error {
	repo := git.Default()
	if !repo.IsRepo(ctx) {
		return fmt.Errorf("not in a git repository")
	}

	status, err := repo.Status(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(status) != "" {
		proceed, err := handleUncommitted(ctx, repo, status)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Println("Push cancelled")
			return nil
		}
	}

	if !repo.HasRemote(ctx) {
		return createRemote(ctx, repo)
	}

	return doPush(ctx, repo, force)
}

// handleUncommitted offers to commit before pushing. Returns false when
// the user cancels.
func handleUncommitted(ctx context.Context, repo *git.Git, status string) (bool, error) {
	fmt.Println("You have uncommitted changes:")
	fmt.Println(status)

	staged, err := repo.StagedDiff(ctx)
	if err != nil {
		return false, err
	}

	options := []string{
		"Commit all changes and push",
		"Push anyway (ignore uncommitted changes)",
		"Cancel",
	}
	if strings.TrimSpace(staged) != "" {
		options = append([]string{"Commit staged changes and push"}, options...)
	}

	choice := promptChoice("What would you like to do?", options)
	if choice < 0 {
		return false, nil
	}
	switch options[choice] {
	case "Commit staged changes and push":
		return true, runCommit(ctx, false)
	case "Commit all changes and push":
		return true, runCommit(ctx, true)
	case "Push anyway (ignore uncommitted changes)":
		return true, nil
	default:
		return false, nil
	}
}

// createRemote offers to create a hosting repository when none exists.
func createRemote(ctx context.Context, repo *git.Git) error {
	fmt.Println("No remote repository configured.")

	providers := hosting.Detect()
	if len(providers) == 0 {
		fmt.Println("Install 'gh' (GitHub CLI) or 'glab' (GitLab CLI) to create a remote repository:")
		fmt.Println("  brew install gh")
		fmt.Println("  brew install glab")
		return nil
	}

	options := make([]string, 0, len(providers)+1)
	for _, p := range providers {
		options = append(options, fmt.Sprintf("Create %s repository (%s)", p, p.CLI()))
	}
	options = append(options, "Cancel")

	choice := promptChoice("Create remote repository?", options)
	if choice < 0 || choice >= len(providers) {
		fmt.Println("Push cancelled")
		return nil
	}
	provider := providers[choice]

	name, err := git.RepoName()
	if err != nil {
		return err
	}
	private := confirm("Make repository private?")

	client := hosting.NewClient(provider, git.NewRunner(""))
	result, err := client.CreateRepository(ctx, name, private)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Repository created: %s\n", result)

	if provider == hosting.GitLab {
		// glab does not wire the remote; add it and push.
		if username, err := client.Username(ctx); err == nil {
			if err := repo.AddRemote(ctx, "origin", hosting.RemoteURL(provider, username, name)); err != nil {
				fmt.Printf("Warning: failed to add remote: %v\n", err)
			}
		}
		return doPush(ctx, repo, false)
	}

	// gh --source --push already pushed the code.
	fmt.Println("✓ Code pushed successfully!")
	return nil
}

func doPush(ctx context.Context, repo *git.Git, force bool) error {
	var err error
	if force {
		err = repo.PushForce(ctx)
	} else {
		err = repo.Push(ctx)
	}
	if err == nil {
		fmt.Println("✓ Pushed successfully!")
		return nil
	}

	fmt.Printf("Push failed: %v\n", err)
	if !repo.HasUpstream(ctx) && confirm("Set upstream branch and push?") {
		branch, berr := repo.CurrentBranch(ctx)
		if berr != nil {
			return berr
		}
		if serr := repo.SetUpstream(ctx, "origin", branch); serr != nil {
			return serr
		}
		fmt.Println("✓ Upstream set and pushed successfully!")
		return nil
	}
	return err
}
