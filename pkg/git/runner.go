// Package git wraps the git command line for the devai workflows.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner executes external commands. It exists so tests can inject a
// fake instead of shelling out.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner is the real implementation backed by os/exec.
type execRunner struct {
	dir string
}

// NewRunner creates a Runner executing in dir ("" means the process cwd).
func NewRunner(dir string) Runner {
	return &execRunner{dir: dir}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s cancelled: %w", name, ctx.Err())
		}
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s %v: %s", name, args, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, fmt.Errorf("%s %v: %w", name, args, err)
	}

	return stdout.Bytes(), nil
}

// CommandAvailable reports whether a command line tool is on PATH.
func CommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
