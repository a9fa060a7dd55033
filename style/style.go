// Package style renders strings with lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/streamsift/streamsift/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer applying foreground c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Hidden renders a row that the current selection hides.
var Hidden = func(s string) string {
	return New().Faint(true).Strikethrough(true).Render(s)
}

// Facet renders the heading of a facet in its own color.
func Facet(name string) string {
	c, ok := color.Facet[name]
	if !ok {
		return Bold(name)
	}
	return New().Bold(true).Foreground(c).Render(name)
}
