package cmake

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes a formatted command line in a working directory. The
// caller hands off the command and does not depend on its output; failures
// surface as the child process reports them.
type Runner interface {
	Run(ctx context.Context, command, dir string) error
}

// ExecRunner runs command lines through the shell with output streamed to
// the configured writers.
type ExecRunner struct {
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Run executes command via `sh -c` with dir as working directory and blocks
// until the process exits.
func (r *ExecRunner) Run(ctx context.Context, command, dir string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context already canceled: %w", err)
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // command is shown to and editable by the user
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", command, err)
	}
	return nil
}

// LookPath reports whether the cmake executable can be found.
func LookPath(cmakeCmd string) (string, bool) {
	p, err := exec.LookPath(cmakeCmd)
	if err != nil {
		return "", false
	}
	return p, true
}
