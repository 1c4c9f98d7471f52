package wizard

import (
	"context"
	"fmt"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
)

// Prompt messages.
const (
	msgProjectName = "📝 Project name?"
	msgLanguage    = "🔧 Language programming?"
	msgTemplate    = "📁 Structure folder?"
)

// Selection is the user's confirmed answers.
type Selection struct {
	ProjectName string
	Language    catalog.Language
	Template    catalog.Template
}

// Run asks for a project name, a language, and a template, in that order.
// It returns ErrCancelled (possibly wrapped) if the user aborts any prompt.
func Run(ctx context.Context, p Prompter, c *catalog.Catalog) (*Selection, error) {
	name, err := askProjectName(ctx, p)
	if err != nil {
		return nil, err
	}

	languages := c.Languages()
	langOptions := make([]string, len(languages))
	for i, l := range languages {
		langOptions[i] = optionLabel(l.Icon, l.Label)
	}
	langIdx, err := p.Select(ctx, SelectConfig{Message: msgLanguage, Options: langOptions})
	if err != nil {
		return nil, fmt.Errorf("choosing language: %w", err)
	}
	if langIdx < 0 || langIdx >= len(languages) {
		return nil, fmt.Errorf("choosing language: index %d out of range", langIdx)
	}
	lang := languages[langIdx].Key

	templates := c.Templates(lang)
	tplOptions := make([]string, len(templates))
	for i, t := range templates {
		tplOptions[i] = optionLabel(t.Icon, t.Label)
	}
	tplIdx, err := p.Select(ctx, SelectConfig{Message: msgTemplate, Options: tplOptions})
	if err != nil {
		return nil, fmt.Errorf("choosing template: %w", err)
	}
	if tplIdx < 0 || tplIdx >= len(templates) {
		return nil, fmt.Errorf("choosing template: index %d out of range", tplIdx)
	}

	return &Selection{
		ProjectName: name,
		Language:    lang,
		Template:    templates[tplIdx].Key,
	}, nil
}

// askProjectName re-prompts until the answer passes ValidateName, whether or
// not the driver enforced the validator itself.
func askProjectName(ctx context.Context, p Prompter) (string, error) {
	for {
		name, err := p.Input(ctx, InputConfig{
			Message:   msgProjectName,
			Help:      "Lowercase letters, numbers and hyphens; must start with a letter.",
			Validator: ValidateName,
		})
		if err != nil {
			return "", fmt.Errorf("reading project name: %w", err)
		}
		if verr := ValidateName(name); verr != nil {
			if err := p.Info(ctx, "❌ "+verr.Error()); err != nil {
				return "", err
			}
			continue
		}
		return name, nil
	}
}

func optionLabel(icon, label string) string {
	if icon == "" {
		return label
	}
	return icon + " " + label
}
