package catalog

import "fmt"

// Language identifies a target programming language. Its value doubles as the
// directory name under the scaffold root.
type Language string

// Supported languages.
const (
	Rust   Language = "rust"
	Python Language = "python"
)

// Template identifies an architectural skeleton. Its value is the suffix of
// the scaffold script name (scaffold_<template>).
type Template string

// Known templates.
const (
	RsCleanAxum          Template = "rs_clean_axum"
	PyCleanFastAPI       Template = "py_clean_fastapi"
	PyAgentic            Template = "py_agentic"
	PyHybridAgenticClean Template = "py_hybrid_agnetic_clean"
)

// DefaultTemplate supplies the instructions for unrecognized template keys.
const DefaultTemplate = PyCleanFastAPI

var languageAliases = map[string]Language{
	"rust":   Rust,
	"rs":     Rust,
	"python": Python,
	"py":     Python,
}

// ParseLanguage converts a language name or its short alias ("rs", "py").
func ParseLanguage(s string) (Language, error) {
	if l, ok := languageAliases[s]; ok {
		return l, nil
	}
	return "", fmt.Errorf("unknown language %q: supported languages are %q and %q", s, Rust, Python)
}

// ParseTemplate converts a template key, rejecting keys with no catalog entry.
func ParseTemplate(s string) (Template, error) {
	switch t := Template(s); t {
	case RsCleanAxum, PyCleanFastAPI, PyAgentic, PyHybridAgenticClean:
		return t, nil
	default:
		return "", fmt.Errorf("unknown template %q", s)
	}
}

// Language returns the language a template belongs to.
func (t Template) Language() Language {
	switch t {
	case RsCleanAxum:
		return Rust
	case PyCleanFastAPI, PyAgentic, PyHybridAgenticClean:
		return Python
	default:
		return ""
	}
}

// LanguageInfo describes a language option.
type LanguageInfo struct {
	Key   Language
	Label string
	Icon  string
}

// TemplateInfo describes a template option. Hidden templates keep their
// instructions but are not offered by the wizard.
type TemplateInfo struct {
	Key      Template
	Language Language
	Label    string
	Icon     string
	Hidden   bool
}

// InstructionSet is the pre-authored next-step guidance for a template.
type InstructionSet struct {
	Title       string
	Description string
	URL         string // optional
	Steps       []string
}
