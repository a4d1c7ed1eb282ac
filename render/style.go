package render

import (
	"github.com/charmbracelet/lipgloss"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var fg = lipgloss.AdaptiveColor{
	Light: "#3c3836",
	Dark:  "#ebdbb2",
}
var blue = lipgloss.Color("#458588")
var purple = lipgloss.Color("#b16286")
var gray = lipgloss.Color("#928374")

var baseStyle = lipgloss.NewStyle().
	Foreground(fg)

var cellStyle = baseStyle.
	Bold(true)

var endStyle = baseStyle.
	Foreground(purple).
	Bold(true)

var linkStyle = baseStyle.
	Foreground(blue)

var emptyStyle = baseStyle.
	Foreground(gray).
	Italic(true)
