package scaffold

import (
	"os"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
	"github.com/scaffold2dev/scaffold2dev/internal/platform"
)

// ScriptStatus describes the script backing one catalog template.
type ScriptStatus struct {
	Language   catalog.Language
	Template   catalog.Template
	Hidden     bool
	Path       string
	Exists     bool
	Executable bool
}

// Check inspects the script for every template in c without running it.
func Check(root string, c *catalog.Catalog) []ScriptStatus {
	var statuses []ScriptStatus
	for _, t := range c.AllTemplates() {
		st := ScriptStatus{
			Language: t.Language,
			Template: t.Key,
			Hidden:   t.Hidden,
			Path:     ScriptPath(root, t.Language, t.Key),
		}
		if info, err := os.Stat(st.Path); err == nil && !info.IsDir() {
			st.Exists = true
			st.Executable = platform.IsExecutable(info)
		}
		statuses = append(statuses, st)
	}
	return statuses
}
