package scaffold

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
)

// recordingRunner fails the test if a process would be spawned.
type recordingRunner struct {
	calls int
	out   *Output
	err   error
}

func (r *recordingRunner) Run(_ context.Context, _, _ string, _ ...string) (*Output, error) {
	r.calls++
	return r.out, r.err
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on Windows")
	}
}

// writeScript creates <root>/<lang>/scaffold_<tpl> with the given body and mode.
func writeScript(t *testing.T, root string, lang catalog.Language, tpl catalog.Template, body string, mode os.FileMode) string {
	t.Helper()
	path := ScriptPath(root, lang, tpl)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func TestScriptPath(t *testing.T) {
	tests := []struct {
		lang catalog.Language
		tpl  catalog.Template
		want string
	}{
		{catalog.Rust, catalog.RsCleanAxum, filepath.Join("/opt/scaffold", "rust", "scaffold_rs_clean_axum")},
		{catalog.Python, catalog.PyCleanFastAPI, filepath.Join("/opt/scaffold", "python", "scaffold_py_clean_fastapi")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScriptPath("/opt/scaffold", tt.lang, tt.tpl))
	}
}

func TestDispatch_ScriptNotFound(t *testing.T) {
	root := t.TempDir()
	work := t.TempDir()
	runner := &recordingRunner{}
	d := &Dispatcher{Root: root, Dir: work, Runner: runner}

	res, err := d.Dispatch(context.Background(), catalog.Python, catalog.PyCleanFastAPI, "myapp")

	assert.Nil(t, res)
	require.ErrorIs(t, err, ErrScriptNotFound)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), ScriptPath(root, catalog.Python, catalog.PyCleanFastAPI))
	assert.Zero(t, runner.calls, "no process may be spawned for a missing script")

	entries, _ := os.ReadDir(work)
	assert.Empty(t, entries)
}

func TestDispatch_ScriptIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(ScriptPath(root, catalog.Rust, catalog.RsCleanAxum), 0755))
	runner := &recordingRunner{}
	d := &Dispatcher{Root: root, Runner: runner}

	_, err := d.Dispatch(context.Background(), catalog.Rust, catalog.RsCleanAxum, "svc")

	require.ErrorIs(t, err, ErrScriptNotFound)
	assert.Zero(t, runner.calls)
}

func TestDispatch_RunsScriptInWorkingDir(t *testing.T) {
	skipOnWindows(t)
	root := t.TempDir()
	work := t.TempDir()
	writeScript(t, root, catalog.Python, catalog.PyCleanFastAPI, `#!/bin/sh
mkdir "$1"
echo "created $1"
echo "$#" > "$1/argc"
`, 0644)

	var logs bytes.Buffer
	d := &Dispatcher{
		Root:   root,
		Dir:    work,
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	res, err := d.Dispatch(context.Background(), catalog.Python, catalog.PyCleanFastAPI, "myapp")
	require.NoError(t, err)

	assert.Equal(t, "created myapp\n", res.Stdout)
	assert.DirExists(t, filepath.Join(work, "myapp"))
	argc, err := os.ReadFile(filepath.Join(work, "myapp", "argc"))
	require.NoError(t, err)
	assert.Equal(t, "1\n", string(argc))
	assert.Contains(t, logs.String(), "running scaffold script")

	info, err := os.Stat(res.Script)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0100, "script should have been made executable")
}

func TestDispatch_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	root := t.TempDir()
	writeScript(t, root, catalog.Rust, catalog.RsCleanAxum, `#!/bin/sh
echo "cargo not installed" >&2
exit 3
`, 0755)
	d := &Dispatcher{Root: root, Dir: t.TempDir()}

	res, err := d.Dispatch(context.Background(), catalog.Rust, catalog.RsCleanAxum, "svc")

	assert.Nil(t, res)
	var scriptErr *ScriptError
	require.True(t, errors.As(err, &scriptErr), "want *ScriptError, got %T: %v", err, err)
	assert.Equal(t, 3, scriptErr.ExitCode)
	assert.Equal(t, "cargo not installed\n", scriptErr.Stderr)
	assert.Contains(t, err.Error(), "cargo not installed")
	assert.Contains(t, err.Error(), "status 3")
}

func TestDispatch_RunnerError(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, catalog.Python, catalog.PyCleanFastAPI, "#!/bin/sh\n", 0755)
	boom := errors.New("exec format error")
	d := &Dispatcher{Root: root, Dir: t.TempDir(), Runner: &recordingRunner{out: &Output{}, err: boom}}

	_, err := d.Dispatch(context.Background(), catalog.Python, catalog.PyCleanFastAPI, "myapp")

	assert.ErrorIs(t, err, boom)
}

func TestScriptError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  ScriptError
		want string
	}{
		{
			name: "stderr wins",
			err:  ScriptError{Script: "/s", ExitCode: 1, Stdout: "out", Stderr: "boom\n"},
			want: "scaffold script /s exited with status 1: boom",
		},
		{
			name: "stdout fallback",
			err:  ScriptError{Script: "/s", ExitCode: 2, Stdout: "partial\n"},
			want: "scaffold script /s exited with status 2: partial",
		},
		{
			name: "silent",
			err:  ScriptError{Script: "/s", ExitCode: 4},
			want: "scaffold script /s exited with status 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExecRunner_StartFailure(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
