package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// EnsureExecutable adds the execute bit for every class that can already read
// the file (the equivalent of chmod +x honouring the read mask). Files that
// are already executable are left untouched.
func EnsureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	perm := info.Mode().Perm()
	want := perm | (perm&0444)>>2 | 0100
	if want == perm {
		return nil
	}
	return Chmod(path, want)
}

// IsExecutable reports whether any execute bit is set. On Windows every
// regular file counts as executable.
func IsExecutable(info os.FileInfo) bool {
	if runtime.GOOS == "windows" {
		return info.Mode().IsRegular()
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
