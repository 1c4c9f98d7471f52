// Package catalog holds the fixed set of languages and templates the wizard
// offers, and the next-step instructions printed after a project has been
// scaffolded. The data is embedded from catalog.yaml, validated against an
// embedded JSON schema, and cross-checked against the Language and Template
// constants so every key the code knows has exactly one catalog entry.
package catalog
