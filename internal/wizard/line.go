package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type linePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter returns a Prompter that reads answers line by line from r
// and draws numbered menus on w. It is used when stdin is not a terminal.
// End of input cancels the prompt.
func NewLinePrompter(r io.Reader, w io.Writer) Prompter {
	return &linePrompter{reader: bufio.NewReader(r), w: w}
}

func (l *linePrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(l.w, "%s ", cfg.Message)

		line, err := l.readLine()
		if err != nil {
			return "", err
		}
		if cfg.Validator != nil {
			if verr := cfg.Validator(line); verr != nil {
				fmt.Fprintf(l.w, "  %v\n", verr)
				continue
			}
		}
		return line, nil
	}
}

func (l *linePrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(cfg.Options) == 0 {
		return 0, fmt.Errorf("%s: no options to choose from", cfg.Message)
	}

	fmt.Fprintf(l.w, "\n%s\n", cfg.Message)
	for i, item := range cfg.Options {
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, item)
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(l.w, "Enter number [1-%d]: ", len(cfg.Options))

		line, err := l.readLine()
		if err != nil {
			return 0, err
		}

		num, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || num < 1 || num > len(cfg.Options) {
			fmt.Fprintf(l.w, "  invalid selection %q: choose 1-%d\n", strings.TrimSpace(line), len(cfg.Options))
			continue
		}
		return num - 1, nil
	}
}

func (l *linePrompter) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(l.w, msg)
	return err
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; EOF with nothing read means cancellation.
func (l *linePrompter) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
