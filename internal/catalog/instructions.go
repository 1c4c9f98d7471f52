package catalog

import (
	"strings"
)

// Instructions returns the next-step guidance for the template key, with
// steps rendered for projectName. Unrecognized keys get the guidance of
// DefaultTemplate.
func (c *Catalog) Instructions(key string, projectName string) InstructionSet {
	tpl := Template(key)
	switch tpl {
	case RsCleanAxum, PyCleanFastAPI, PyAgentic, PyHybridAgenticClean:
	default:
		tpl = DefaultTemplate
	}

	entry, ok := c.steps[tpl]
	if !ok {
		entry = c.steps[DefaultTemplate]
	}
	return entry.render(projectName)
}

func (e *instructionEntry) render(projectName string) InstructionSet {
	set := e.set
	set.Steps = make([]string, len(e.steps))
	data := stepData{ProjectName: projectName}
	for i, tmpl := range e.steps {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, data); err != nil {
			// Parse has already rendered every step once.
			set.Steps[i] = e.set.Steps[i]
			continue
		}
		set.Steps[i] = sb.String()
	}
	return set
}
