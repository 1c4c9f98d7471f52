package wizard

import (
	"context"
	"errors"
)

// ErrCancelled is returned by a Prompter when the user aborts a prompt.
var ErrCancelled = errors.New("operation cancelled")

// InputConfig configures a free-text prompt.
type InputConfig struct {
	Message   string
	Help      string
	Validator func(string) error
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message string
	Options []string
	Help    string
}

// Prompter abstracts the prompt implementation so the wizard can run against
// a real terminal, piped input, or a scripted fake in tests.
type Prompter interface {
	// Input returns the text entered by the user. Drivers that honour
	// Validator keep asking until it passes.
	Input(ctx context.Context, cfg InputConfig) (string, error)
	// Select returns the index of the chosen option.
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	// Info shows a one-line message between prompts.
	Info(ctx context.Context, msg string) error
}
