package hosting

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeRunner struct {
	calls [][]string
	out   string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return []byte(f.out), f.err
}

func (f *fakeRunner) last() string {
	if len(f.calls) == 0 {
		return ""
	}
	return strings.Join(f.calls[len(f.calls)-1], " ")
}

func TestCreateRepositoryGitHub(t *testing.T) {
	runner := &fakeRunner{out: "https://github.com/user/myrepo\n"}
	client := NewClient(GitHub, runner)

	url, err := client.CreateRepository(context.Background(), "myrepo", false)
	if err != nil {
		t.Fatalf("CreateRepository() error: %v", err)
	}
	if url != "https://github.com/user/myrepo" {
		t.Errorf("url = %q", url)
	}
	// gh wires the remote and pushes in one step.
	if got := runner.last(); got != "gh repo create myrepo --public --source . --push" {
		t.Errorf("command = %q", got)
	}
}

func TestCreateRepositoryGitHubPrivate(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClient(GitHub, runner)

	if _, err := client.CreateRepository(context.Background(), "myrepo", true); err != nil {
		t.Fatalf("CreateRepository() error: %v", err)
	}
	if !strings.Contains(runner.last(), "--private") {
		t.Errorf("command = %q", runner.last())
	}
}

func TestCreateRepositoryGitLab(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClient(GitLab, runner)

	if _, err := client.CreateRepository(context.Background(), "myrepo", false); err != nil {
		t.Fatalf("CreateRepository() error: %v", err)
	}
	if got := runner.last(); got != "glab repo create myrepo --public" {
		t.Errorf("command = %q", got)
	}
}

func TestCreateRepositoryFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("already exists")}
	client := NewClient(GitHub, runner)

	if _, err := client.CreateRepository(context.Background(), "myrepo", false); err == nil {
		t.Error("expected error")
	}
}

func TestUsername(t *testing.T) {
	runner := &fakeRunner{out: "someuser\n"}
	client := NewClient(GitLab, runner)

	username, err := client.Username(context.Background())
	if err != nil {
		t.Fatalf("Username() error: %v", err)
	}
	if username != "someuser" {
		t.Errorf("username = %q", username)
	}

	if _, err := NewClient(GitHub, runner).Username(context.Background()); err == nil {
		t.Error("expected error for github username lookup")
	}
}

func TestRemoteURL(t *testing.T) {
	if got := RemoteURL(GitLab, "user", "repo"); got != "git@gitlab.com:user/repo.git" {
		t.Errorf("gitlab url = %q", got)
	}
	if got := RemoteURL(GitHub, "user", "repo"); got != "git@github.com:user/repo.git" {
		t.Errorf("github url = %q", got)
	}
}
