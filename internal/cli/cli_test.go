package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliEnv isolates HOME, the working directory, and the scaffold root.
type cliEnv struct {
	home string
	work string
	root string
}

func setupCLI(t *testing.T) *cliEnv {
	t.Helper()
	env := &cliEnv{
		home: t.TempDir(),
		work: t.TempDir(),
		root: t.TempDir(),
	}
	t.Setenv("HOME", env.home)
	t.Setenv("SCAFFOLD2DEV_SCAFFOLD_ROOT", env.root)
	t.Setenv("NO_COLOR", "1")
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(env.work))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	viper.Reset()
	t.Cleanup(viper.Reset)

	versionShort, versionJSON = false, false
	listLanguage, listAll, listJSON = "", false, false
	return env
}

// run executes the root command with args, feeding stdin, and returns the
// combined stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeScript(t *testing.T, root, lang, tpl, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on Windows")
	}
	dir := filepath.Join(root, lang)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffold_"+tpl), []byte(body), 0644))
}

const mkdirScript = `#!/bin/sh
mkdir "$1"
echo "generated $1"
`

func TestWizard_PythonSuccess(t *testing.T) {
	env := setupCLI(t)
	writeScript(t, env.root, "python", "py_clean_fastapi", mkdirScript)

	out, err := run(t, "myapp\n2\n1\n")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(env.work, "myapp"))
	assert.Contains(t, out, "Welcome to Scaffold2Dev CLI App")
	assert.Contains(t, out, "cd myapp")
	assert.Contains(t, out, "./run.sh")
	assert.Contains(t, out, "FastAPI Clean Architecture")
	assert.NotContains(t, out, "generated myapp", "script output is hidden unless show_output is set")
}

func TestWizard_RustSuccess(t *testing.T) {
	env := setupCLI(t)
	writeScript(t, env.root, "rust", "rs_clean_axum", mkdirScript)

	out, err := run(t, "svc\n1\n1\n")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(env.work, "svc"))
	assert.Contains(t, out, "Rust Axum Getting Started")
	assert.Contains(t, out, "cd svc")
}

func TestWizard_ShowOutput(t *testing.T) {
	env := setupCLI(t)
	t.Setenv("SCAFFOLD2DEV_SHOW_OUTPUT", "true")
	writeScript(t, env.root, "python", "py_clean_fastapi", mkdirScript)

	out, err := run(t, "myapp\n2\n1\n")
	require.NoError(t, err)
	assert.Contains(t, out, "generated myapp")
}

func TestWizard_RepromptsInvalidName(t *testing.T) {
	env := setupCLI(t)
	writeScript(t, env.root, "python", "py_clean_fastapi", mkdirScript)

	out, err := run(t, "My App\n\nmy-app\n2\n1\n")
	require.NoError(t, err)

	assert.Contains(t, out, "lowercase")
	assert.Contains(t, out, "required")
	assert.DirExists(t, filepath.Join(env.work, "my-app"))
}

func TestWizard_CancelIsNotAnError(t *testing.T) {
	inputs := []string{
		"",           // at the name prompt
		"myapp\n",    // at the language prompt
		"myapp\n2\n", // at the template prompt
	}
	for _, stdin := range inputs {
		env := setupCLI(t)
		writeScript(t, env.root, "python", "py_clean_fastapi", mkdirScript)

		out, err := run(t, stdin)
		require.NoError(t, err, "stdin %q", stdin)
		assert.Contains(t, out, "Operation cancelled.")

		entries, readErr := os.ReadDir(env.work)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "cancellation must not touch the filesystem")
	}
}

func TestWizard_ScriptNotFound(t *testing.T) {
	env := setupCLI(t)

	out, err := run(t, "myapp\n2\n1\n")
	require.Error(t, err)

	var reported *reportedError
	assert.ErrorAs(t, err, &reported)
	assert.Contains(t, out, "Failed to create project")
	assert.Contains(t, out, "scaffold script not found")
	assert.NoDirExists(t, filepath.Join(env.work, "myapp"))
}

func TestWizard_ScriptFails(t *testing.T) {
	env := setupCLI(t)
	writeScript(t, env.root, "python", "py_clean_fastapi", "#!/bin/sh\necho 'python3 not found' >&2\nexit 1\n")

	out, err := run(t, "myapp\n2\n1\n")
	require.Error(t, err)

	assert.Contains(t, out, "💥 Error:")
	assert.Contains(t, out, "python3 not found")
	assert.NotContains(t, out, "Next steps")
}

func TestWizard_RejectsArguments(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "", "myapp")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "rs_clean_axum")
	assert.Contains(t, out, "py_clean_fastapi")
	assert.NotContains(t, out, "py_agentic")
}

func TestList_AllJSON(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "", "list", "--all", "--json", "--language", "py")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	var keys []string
	for _, e := range entries {
		assert.Equal(t, "python", e.Language)
		keys = append(keys, e.Template)
	}
	assert.Equal(t, []string{"py_clean_fastapi", "py_agentic", "py_hybrid_agnetic_clean"}, keys)
}

func TestList_UnknownLanguage(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "", "list", "--language", "go")
	assert.Error(t, err)
}

func TestDoctor(t *testing.T) {
	env := setupCLI(t)
	writeScript(t, env.root, "rust", "rs_clean_axum", mkdirScript)

	out, err := run(t, "", "doctor")
	require.Error(t, err, "python template script is missing")
	assert.Contains(t, out, "[WARN] rust/rs_clean_axum")
	assert.Contains(t, out, "[MISS] python/py_clean_fastapi")
	assert.Contains(t, out, "[INFO] python/py_agentic not installed (hidden)")

	writeScript(t, env.root, "python", "py_clean_fastapi", mkdirScript)
	_, err = run(t, "", "doctor")
	assert.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	env := setupCLI(t)

	_, err := run(t, "", "config", "set", "show_output", "true")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.home, ".scaffold2dev", "config.yaml"))

	viper.Reset()
	out, err := run(t, "", "config", "get", "show_output")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, err = run(t, "", "config", "get", "mirror_url")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setupCLI(t)
	buildVersion, buildCommit, buildDate = "v1.2", "abc123", "2026-01-01"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "", "", "" })

	out, err := run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0\n", out)

	versionShort = false
	out, err = run(t, "", "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "abc123", info["commit"])
	assert.Equal(t, "1.1.0", info["catalog_schema"])
}

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "dev", displayVersion("dev"))
	assert.Equal(t, "1.0.0", displayVersion("v1"))
	assert.Equal(t, "0.3.1-rc.1", displayVersion("0.3.1-rc.1"))
}
