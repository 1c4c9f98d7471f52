// Package cli defines the Cobra command tree for the scaffold2dev CLI. The
// root command runs the interactive wizard; the remaining commands inspect
// the template catalog, the scaffold scripts, and user settings. Command
// implementations delegate to internal packages and only handle flags,
// output formatting, and user interaction.
package cli
