// Package ui renders the wizard's banners, status lines, errors, and the
// next-steps note with lipgloss. Styling follows the output writer: writers
// that are not terminals get plain text.
package ui
