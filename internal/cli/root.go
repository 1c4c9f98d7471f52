package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scaffold2dev/scaffold2dev/internal/branding"
	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
	"github.com/scaffold2dev/scaffold2dev/internal/config"
	"github.com/scaffold2dev/scaffold2dev/internal/scaffold"
	"github.com/scaffold2dev/scaffold2dev/internal/ui"
	"github.com/scaffold2dev/scaffold2dev/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks for a project name, a language, and an architectural template,
then runs the matching scaffold script to create the project in the current directory.

Run it without arguments to start the wizard.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runWizard,
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags.
// Errors not already reported by a command are printed to stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := ui.New(cmd.OutOrStdout(), colorEnabled())

	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading template catalog: %w", err)
	}

	out.Intro(branding.DisplayName())

	sel, err := wizard.Run(ctx, newPrompter(cmd), c)
	if errors.Is(err, wizard.ErrCancelled) {
		out.Cancelled()
		return nil
	}
	if err != nil {
		return err
	}

	root, err := scaffold.ResolveRoot()
	if err != nil {
		return fmt.Errorf("resolving scaffold root: %w", err)
	}

	d := &scaffold.Dispatcher{
		Root:   root,
		Logger: newLogger(cmd.ErrOrStderr()),
	}

	out.Status("Creating project structure...")
	res, err := d.Dispatch(ctx, sel.Language, sel.Template, sel.ProjectName)
	if err != nil {
		out.Failure("Failed to create project")
		out.Error(err)
		return &reportedError{err: err}
	}
	out.Success("Project created successfully!")

	if config.GetBool(config.KeyShowOutput) {
		out.Output(res.Stdout)
	}

	out.Instructions(c.Instructions(string(sel.Template), sel.ProjectName))
	out.Outro("Project created successfully!")
	return nil
}

// newPrompter picks the survey driver when reading from a real terminal and
// the numbered-menu driver otherwise.
func newPrompter(cmd *cobra.Command) wizard.Prompter {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		if out, ok := cmd.OutOrStdout().(*os.File); ok {
			return wizard.NewSurveyPrompter(f, out, cmd.ErrOrStderr())
		}
	}
	return wizard.NewLinePrompter(in, cmd.OutOrStdout())
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return !config.GetBool(config.KeyNoColor)
}

// newLogger returns a debug logger on w when the debug setting is on, and a
// discarding logger otherwise.
func newLogger(w io.Writer) *slog.Logger {
	if !config.GetBool(config.KeyDebug) {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
