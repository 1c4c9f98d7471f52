package main

import (
	"os"

	"github.com/scaffold2dev/scaffold2dev/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Cancellation returns nil; every error exits 1.
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
