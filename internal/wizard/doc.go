// Package wizard runs the interactive prompt sequence that collects a
// project name, a language, and a template. Prompts go through the Prompter
// interface: a survey-backed driver for terminals and a numbered-menu driver
// for piped input. Cancellation at any prompt surfaces as ErrCancelled.
package wizard
