// Package color names the terminal colors used for output.
package color

import "github.com/charmbracelet/lipgloss"

// ANSI palette.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
	Gray   = lipgloss.Color("8")
)

// Colors of facet headings, keyed by facet name.
var Facet = map[string]lipgloss.Color{
	"quality":  Cyan,
	"language": Yellow,
	"origin":   Purple,
}
