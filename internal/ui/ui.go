package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scaffold2dev/scaffold2dev/internal/catalog"
)

const (
	black   = lipgloss.Color("0")
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	cyan    = lipgloss.Color("6")
	white   = lipgloss.Color("7")
	dimGray = lipgloss.Color("8")
)

type styles struct {
	intro   lipgloss.Style
	outro   lipgloss.Style
	status  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	heading lipgloss.Style
	step    lipgloss.Style
	desc    lipgloss.Style
	url     lipgloss.Style
	title   lipgloss.Style
	box     lipgloss.Style
	output  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	s := styles{
		intro:   r.NewStyle().Bold(true),
		outro:   r.NewStyle().Bold(true),
		status:  r.NewStyle(),
		success: r.NewStyle(),
		failure: r.NewStyle(),
		heading: r.NewStyle(),
		step:    r.NewStyle().PaddingLeft(2),
		desc:    r.NewStyle(),
		url:     r.NewStyle().Underline(true),
		title:   r.NewStyle().Bold(true),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		output:  r.NewStyle().PaddingLeft(2),
	}
	if !color {
		return s
	}
	s.intro = s.intro.Background(cyan).Foreground(black)
	s.outro = s.outro.Background(green).Foreground(black)
	s.status = s.status.Foreground(cyan)
	s.success = s.success.Foreground(green)
	s.failure = s.failure.Foreground(red)
	s.heading = s.heading.Foreground(cyan)
	s.step = s.step.Foreground(yellow)
	s.desc = s.desc.Foreground(green)
	s.url = s.url.Foreground(blue)
	s.title = s.title.Background(blue).Foreground(white)
	s.box = s.box.BorderForeground(cyan)
	s.output = s.output.Foreground(dimGray)
	return s
}

// Printer writes styled wizard output to one writer.
type Printer struct {
	w io.Writer
	s styles
}

// New returns a Printer for w. When color is false no colors are emitted
// even if w is a terminal.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{w: w, s: newStyles(r, color)}
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

// Intro prints the opening banner.
func (p *Printer) Intro(name string) {
	p.line(p.s.intro.Render(fmt.Sprintf(" 🚀 Welcome to %s CLI App ", name)))
	p.line("")
}

// Outro prints the closing banner.
func (p *Printer) Outro(msg string) {
	p.line("")
	p.line(p.s.outro.Render(" 🎉 " + msg + " "))
}

// Status prints an in-progress step.
func (p *Printer) Status(msg string) {
	p.line(p.s.status.Render("🔨 " + msg))
}

// Success prints a completed step.
func (p *Printer) Success(msg string) {
	p.line(p.s.success.Render("✅ " + msg))
}

// Failure prints a failed step.
func (p *Printer) Failure(msg string) {
	p.line(p.s.failure.Render("❌ " + msg))
}

// Cancelled prints the cancellation notice.
func (p *Printer) Cancelled() {
	p.line(p.s.failure.Render("❌ Operation cancelled."))
}

// Error prints err verbatim after an error marker.
func (p *Printer) Error(err error) {
	p.line(p.s.failure.Render("💥 Error: " + err.Error()))
}

// Output prints captured script output, indented.
func (p *Printer) Output(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	p.line(p.s.output.Render(text))
}

// Instructions prints the next-steps note for a scaffolded project.
func (p *Printer) Instructions(set catalog.InstructionSet) {
	p.line("")
	p.line(p.s.title.Render(" " + set.Title + " "))
	p.line(p.s.box.Render(formatInstructions(set, p.s)))
}

// formatInstructions lays out an instruction set as note body text.
func formatInstructions(set catalog.InstructionSet, s styles) string {
	var b strings.Builder
	b.WriteString(s.heading.Render("📋 Next steps:"))
	for _, step := range set.Steps {
		b.WriteString("\n")
		b.WriteString(s.step.Render(step))
	}
	b.WriteString("\n\n")
	if set.URL != "" {
		b.WriteString(s.desc.Render("🌐 " + set.Description + " "))
		b.WriteString(s.url.Render(set.URL))
	} else {
		b.WriteString(s.desc.Render("✨ " + set.Description))
	}
	return b.String()
}
