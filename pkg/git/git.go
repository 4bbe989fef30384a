package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/devai-toolkit/devai/pkg/errors"
)

// Git exposes the repository operations devai needs. All methods take a
// context so callers can bound subprocess lifetime.
type Git struct {
	runner Runner
}

// New creates a Git helper using the given runner.
func New(runner Runner) *Git {
	return &Git{runner: runner}
}

// Default creates a Git helper executing in the current directory.
func Default() *Git {
	return New(NewRunner(""))
}

// IsRepo reports whether the working directory is inside a git repository.
func (g *Git) IsRepo(ctx context.Context) bool {
	_, err := g.runner.Run(ctx, "git", "rev-parse", "--git-dir")
	return err == nil
}

// StagedDiff returns the staged changes (git diff --staged).
func (g *Git) StagedDiff(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, "git", "diff", "--staged")
	if err != nil {
		return "", errors.GitError("git diff --staged failed", err)
	}
	return string(out), nil
}

// UnstagedDiff returns the unstaged changes (git diff).
func (g *Git) UnstagedDiff(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, "git", "diff")
	if err != nil {
		return "", errors.GitError("git diff failed", err)
	}
	return string(out), nil
}

// Status returns porcelain status output.
func (g *Git) Status(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, "git", "status", "--porcelain")
	if err != nil {
		return "", errors.GitError("git status failed", err)
	}
	return string(out), nil
}

// AddAll stages every change in the working tree.
func (g *Git) AddAll(ctx context.Context) error {
	if _, err := g.runner.Run(ctx, "git", "add", "."); err != nil {
		return errors.GitError("git add . failed", err)
	}
	return nil
}

// Commit records the staged changes with the given message.
func (g *Git) Commit(ctx context.Context, message string) error {
	if _, err := g.runner.Run(ctx, "git", "commit", "-m", message); err != nil {
		return errors.GitError("git commit failed", err)
	}
	return nil
}

// Push pushes the current branch to its upstream.
func (g *Git) Push(ctx context.Context) error {
	if _, err := g.runner.Run(ctx, "git", "push"); err != nil {
		return errors.GitError("git push failed", err)
	}
	return nil
}

// PushForce force-pushes the current branch.
func (g *Git) PushForce(ctx context.Context) error {
	if _, err := g.runner.Run(ctx, "git", "push", "-f"); err != nil {
		return errors.GitError("git push -f failed", err)
	}
	return nil
}

// HasRemote reports whether any remote is configured.
func (g *Git) HasRemote(ctx context.Context) bool {
	out, err := g.runner.Run(ctx, "git", "remote")
	return err == nil && len(strings.TrimSpace(string(out))) > 0
}

// HasUpstream reports whether the current branch tracks an upstream.
func (g *Git) HasUpstream(ctx context.Context) bool {
	_, err := g.runner.Run(ctx, "git", "rev-parse", "--abbrev-ref", "@{upstream}")
	return err == nil
}

// SetUpstream pushes the branch and records the upstream.
func (g *Git) SetUpstream(ctx context.Context, remote, branch string) error {
	if _, err := g.runner.Run(ctx, "git", "push", "-u", remote, branch); err != nil {
		return errors.GitError("failed to set upstream", err)
	}
	return nil
}

// CurrentBranch returns the checked-out branch name.
func (g *Git) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.runner.Run(ctx, "git", "branch", "--show-current")
	if err != nil {
		return "", errors.GitError("failed to get current branch", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// AddRemote registers a new remote.
func (g *Git) AddRemote(ctx context.Context, name, url string) error {
	if _, err := g.runner.Run(ctx, "git", "remote", "add", name, url); err != nil {
		return errors.GitError("failed to add remote", err)
	}
	return nil
}

// RepoName derives the repository name from the working directory.
func RepoName() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.GitError("failed to get working directory", err)
	}
	return filepath.Base(dir), nil
}
