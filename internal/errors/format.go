package errors

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const hintWidth = 70

var plain atomic.Bool

// DisableColors makes Format emit plain text.
func DisableColors() { plain.Store(true) }

// EnableColors restores colored output when stderr supports it.
func EnableColors() { plain.Store(false) }

type styles struct {
	label, code, message, cause, hint lipgloss.Style
}

func currentStyles() styles {
	r := lipgloss.NewRenderer(os.Stderr)
	if plain.Load() {
		r = lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		code:    r.NewStyle().Bold(true),
		message: r.NewStyle().Foreground(lipgloss.Color("7")),
		cause:   r.NewStyle().Foreground(lipgloss.Color("8")),
		hint:    r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Format renders the error for a terminal: a headline, the cause, the
// indented detail block and a wrapped hint.
func (e *VtlError) Format() string {
	s := currentStyles()
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(s.label.Render("ERROR") + " " + s.code.Render(e.Code+":") + " ")
	} else {
		b.WriteString(s.label.Render("ERROR:") + " ")
	}
	b.WriteString(s.message.Render(e.Message) + "\n\n")

	if e.Wrapped != nil {
		b.WriteString("  " + s.cause.Render("Cause:") + " " + e.Wrapped.Error() + "\n\n")
	}
	if e.Detail != "" {
		b.WriteString(indent(strings.Split(e.Detail, "\n"), "  ", "  "))
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		b.WriteString(indent(wrapText(e.Suggestion, hintWidth), "  "+s.hint.Render("Hint:")+" ", "        "))
	}
	return b.String()
}

// FormatCompact is the single-line form without detail or hint.
func (e *VtlError) FormatCompact() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

func indent(lines []string, first, rest string) string {
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString(rest)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// wrapText word-wraps text to width columns.
func wrapText(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
