package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// SupportedSchema is the range of catalog schema versions this build reads.
const SupportedSchema = "^1.0.0"

var (
	embedded     *Catalog
	embeddedOnce sync.Once
	embeddedErr  error
)

// Catalog is the parsed, validated set of languages and templates.
type Catalog struct {
	SchemaVersion *semver.Version

	languages []LanguageInfo
	templates []TemplateInfo
	steps     map[Template]*instructionEntry
}

type instructionEntry struct {
	set   InstructionSet
	steps []*template.Template
}

type catalogFile struct {
	SchemaVersion string         `yaml:"schema_version"`
	Languages     []languageFile `yaml:"languages"`
	Templates     []templateFile `yaml:"templates"`
}

type languageFile struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

type templateFile struct {
	Key          string           `yaml:"key"`
	Language     string           `yaml:"language"`
	Label        string           `yaml:"label"`
	Icon         string           `yaml:"icon"`
	Hidden       bool             `yaml:"hidden"`
	Instructions instructionsFile `yaml:"instructions"`
}

type instructionsFile struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Steps       []string `yaml:"steps"`
}

// stepData is the data passed to instruction step templates.
type stepData struct {
	ProjectName string
}

// Load returns the catalog embedded in the binary. It is parsed once.
func Load() (*Catalog, error) {
	embeddedOnce.Do(func() {
		embedded, embeddedErr = Parse(rawCatalog)
	})
	return embedded, embeddedErr
}

// Parse validates and decodes catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("catalog failed schema validation:\n  %s", strings.Join(msgs, "\n  "))
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	version, err := checkSchemaVersion(f.SchemaVersion)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		SchemaVersion: version,
		steps:         make(map[Template]*instructionEntry),
	}

	for _, lf := range f.Languages {
		lang, err := ParseLanguage(lf.Key)
		if err != nil {
			return nil, fmt.Errorf("catalog language: %w", err)
		}
		c.languages = append(c.languages, LanguageInfo{Key: lang, Label: lf.Label, Icon: lf.Icon})
	}

	for _, tf := range f.Templates {
		tpl, err := ParseTemplate(tf.Key)
		if err != nil {
			return nil, fmt.Errorf("catalog template: %w", err)
		}
		if _, dup := c.steps[tpl]; dup {
			return nil, fmt.Errorf("catalog template %q is defined twice", tpl)
		}
		lang, err := ParseLanguage(tf.Language)
		if err != nil {
			return nil, fmt.Errorf("catalog template %q: %w", tpl, err)
		}
		if lang != tpl.Language() {
			return nil, fmt.Errorf("catalog template %q is listed under %q, want %q", tpl, lang, tpl.Language())
		}

		entry, err := compileInstructions(tf.Instructions)
		if err != nil {
			return nil, fmt.Errorf("catalog template %q: %w", tpl, err)
		}

		c.templates = append(c.templates, TemplateInfo{
			Key:      tpl,
			Language: lang,
			Label:    tf.Label,
			Icon:     tf.Icon,
			Hidden:   tf.Hidden,
		})
		c.steps[tpl] = entry
	}

	if _, ok := c.steps[DefaultTemplate]; !ok {
		return nil, fmt.Errorf("catalog is missing the default template %q", DefaultTemplate)
	}
	for _, l := range c.languages {
		if len(c.Templates(l.Key)) == 0 {
			return nil, fmt.Errorf("catalog language %q offers no templates", l.Key)
		}
	}

	return c, nil
}

func checkSchemaVersion(raw string) (*semver.Version, error) {
	version, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing catalog schema_version %q: %w", raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return nil, fmt.Errorf("parsing supported schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return nil, fmt.Errorf("catalog schema_version %s is not supported (want %s)", version, SupportedSchema)
	}
	return version, nil
}

// compileInstructions parses each step as a template and renders it once
// with sample data so bad field references fail at load time.
func compileInstructions(f instructionsFile) (*instructionEntry, error) {
	entry := &instructionEntry{
		set: InstructionSet{
			Title:       f.Title,
			Description: f.Description,
			URL:         f.URL,
			Steps:       f.Steps,
		},
	}
	for i, step := range f.Steps {
		tmpl, err := template.New(fmt.Sprintf("step%d", i)).Option("missingkey=error").Parse(step)
		if err != nil {
			return nil, fmt.Errorf("parsing step %d: %w", i+1, err)
		}
		if err := tmpl.Execute(&bytes.Buffer{}, stepData{ProjectName: "sample"}); err != nil {
			return nil, fmt.Errorf("rendering step %d: %w", i+1, err)
		}
		entry.steps = append(entry.steps, tmpl)
	}
	return entry, nil
}

// Languages returns the languages in catalog order.
func (c *Catalog) Languages() []LanguageInfo {
	out := make([]LanguageInfo, len(c.languages))
	copy(out, c.languages)
	return out
}

// Templates returns the templates offered for lang, in catalog order.
// Hidden templates are left out.
func (c *Catalog) Templates(lang Language) []TemplateInfo {
	var out []TemplateInfo
	for _, t := range c.templates {
		if t.Language == lang && !t.Hidden {
			out = append(out, t)
		}
	}
	return out
}

// AllTemplates returns every template, hidden ones included.
func (c *Catalog) AllTemplates() []TemplateInfo {
	out := make([]TemplateInfo, len(c.templates))
	copy(out, c.templates)
	return out
}
