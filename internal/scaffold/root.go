package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scaffold2dev/scaffold2dev/internal/branding"
	"github.com/scaffold2dev/scaffold2dev/internal/config"
)

// ResolveRoot returns the scaffold root directory, checking (in order):
//  1. the scaffold_root config key (or SCAFFOLD2DEV_SCAFFOLD_ROOT),
//  2. <dir of the executable>/../scaffold,
//  3. ./scaffold under the working directory.
//
// A configured root is returned as-is even if missing. Otherwise the first
// existing candidate wins, falling back to the executable-relative path.
func ResolveRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return resolveRoot(config.Get(config.KeyScaffoldRoot), exe, cwd), nil
}

func resolveRoot(configured, exe, cwd string) string {
	if configured != "" {
		if abs, err := filepath.Abs(configured); err == nil {
			return abs
		}
		return configured
	}

	candidates := []string{
		filepath.Join(filepath.Dir(exe), "..", branding.ScaffoldDir()),
		filepath.Join(cwd, branding.ScaffoldDir()),
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return filepath.Clean(c)
		}
	}
	return filepath.Clean(candidates[0])
}
