package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
	"github.com/scaffold2dev/scaffold2dev/internal/platform"
)

// ErrScriptNotFound is returned when no scaffold script exists for the
// requested language and template. No process is started in that case.
var ErrScriptNotFound = errors.New("scaffold script not found")

// ScriptError reports a scaffold script that exited with a non-zero status.
type ScriptError struct {
	Script   string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ScriptError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("scaffold script %s exited with status %d", e.Script, e.ExitCode)
	}
	return fmt.Sprintf("scaffold script %s exited with status %d: %s", e.Script, e.ExitCode, msg)
}

// Result holds the outcome of a successful dispatch.
type Result struct {
	Script string
	Stdout string
	Stderr string
}

// ScriptPath returns the conventional location of the script for lang and tpl.
func ScriptPath(root string, lang catalog.Language, tpl catalog.Template) string {
	return filepath.Join(root, string(lang), "scaffold_"+string(tpl))
}

// Dispatcher resolves and runs scaffold scripts.
type Dispatcher struct {
	// Root is the directory holding the per-language script folders.
	Root string
	// Dir is the working directory for the script; empty means the
	// current process directory.
	Dir string
	// Runner defaults to ExecRunner.
	Runner Runner
	// Logger receives debug diagnostics; nil discards them.
	Logger *slog.Logger
}

// Dispatch runs the scaffold script for lang and tpl with projectName as its
// only argument and blocks until it exits.
func (d *Dispatcher) Dispatch(ctx context.Context, lang catalog.Language, tpl catalog.Template, projectName string) (*Result, error) {
	log := d.logger()
	script := ScriptPath(d.Root, lang, tpl)

	info, err := os.Stat(script)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, script)
	case err != nil:
		return nil, fmt.Errorf("checking scaffold script %s: %w", script, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s is a directory", ErrScriptNotFound, script)
	}

	if err := platform.EnsureExecutable(script); err != nil {
		return nil, fmt.Errorf("making %s executable: %w", script, err)
	}

	dir := d.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}

	log.Debug("running scaffold script", "script", script, "dir", dir, "project", projectName)

	runner := d.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	out, err := runner.Run(ctx, dir, script, projectName)
	if err != nil {
		return nil, err
	}

	log.Debug("scaffold script finished", "exit_code", out.ExitCode, "stdout_bytes", len(out.Stdout), "stderr_bytes", len(out.Stderr))

	if out.ExitCode != 0 {
		return nil, &ScriptError{
			Script:   script,
			ExitCode: out.ExitCode,
			Stdout:   out.Stdout,
			Stderr:   out.Stderr,
		}
	}

	return &Result{Script: script, Stdout: out.Stdout, Stderr: out.Stderr}, nil
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}
