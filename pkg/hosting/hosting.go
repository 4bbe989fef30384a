// Package hosting creates remote repositories through the GitHub and
// GitLab CLIs (gh, glab). devai never talks to hosting REST APIs
// directly; the provider CLIs own authentication.
package hosting

import (
	"context"
	"strings"

	"github.com/devai-toolkit/devai/pkg/errors"
	"github.com/devai-toolkit/devai/pkg/git"
)

// Provider identifies a repository hosting provider.
type Provider string

const (
	GitHub Provider = "github"
	GitLab Provider = "gitlab"
)

// CLI returns the provider's command line tool name.
func (p Provider) CLI() string {
	switch p {
	case GitHub:
		return "gh"
	case GitLab:
		return "glab"
	default:
		return ""
	}
}

// Detect returns the providers whose CLIs are installed, in preference
// order.
func Detect() []Provider {
	var available []Provider
	for _, p := range []Provider{GitHub, GitLab} {
		if git.CommandAvailable(p.CLI()) {
			available = append(available, p)
		}
	}
	return available
}

// Client creates repositories on one provider.
type Client struct {
	provider Provider
	runner   git.Runner
}

// NewClient creates a hosting client.
func NewClient(provider Provider, runner git.Runner) *Client {
	return &Client{provider: provider, runner: runner}
}

// Provider returns the client's provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// CreateRepository creates a remote repository named after the current
// project. For GitHub the gh CLI also wires the remote and pushes; for
// GitLab the caller adds the remote afterwards.
func (c *Client) CreateRepository(ctx context.Context, name string, private bool) (string, error) {
	visibility := "--public"
	if private {
		visibility = "--private"
	}

	switch c.provider {
	case GitHub:
		out, err := c.runner.Run(ctx, "gh", "repo", "create", name, visibility, "--source", ".", "--push")
		if err != nil {
			return "", errors.New(errors.ErrGit, "gh repo create failed", err)
		}
		return strings.TrimSpace(string(out)), nil
	case GitLab:
		out, err := c.runner.Run(ctx, "glab", "repo", "create", name, visibility)
		if err != nil {
			return "", errors.New(errors.ErrGit, "glab repo create failed", err)
		}
		return strings.TrimSpace(string(out)), nil
	default:
		return "", errors.ValidationError("unknown hosting provider: "+string(c.provider), nil)
	}
}

// Username returns the authenticated GitLab username, used to build the
// remote URL after repository creation.
func (c *Client) Username(ctx context.Context) (string, error) {
	if c.provider != GitLab {
		return "", errors.ValidationError("username lookup only supported for gitlab", nil)
	}
	out, err := c.runner.Run(ctx, "glab", "api", "user", "--jq", ".username")
	if err != nil {
		return "", errors.New(errors.ErrGit, "glab user lookup failed", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RemoteURL builds the SSH remote URL for a repository.
func RemoteURL(provider Provider, username, name string) string {
	switch provider {
	case GitLab:
		return "git@gitlab.com:" + username + "/" + name + ".git"
	default:
		return "git@github.com:" + username + "/" + name + ".git"
	}
}
