package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Output captures the result of a script execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a script and waits for it to finish. A non-zero exit is
// reported through Output.ExitCode, not the error; the error is reserved for
// failures to start or wait on the process.
type Runner interface {
	Run(ctx context.Context, dir, script string, args ...string) (*Output, error)
}

// ExecRunner runs scripts as child processes with captured stdout and stderr.
type ExecRunner struct{}

// Run executes script with args in dir. The process inherits the current
// environment and gets no stdin.
func (ExecRunner) Run(ctx context.Context, dir, script string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, script, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s: %w", script, err)
	}

	return output, nil
}
