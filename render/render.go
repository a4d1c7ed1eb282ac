// Package render draws the values of a list on a single line.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hop.computer/dlist/pkg/list"
)

const (
	link     = " <-> "
	ellipsis = " ..."
	nilEnd   = "nil"
)

// Options control how a list is drawn.
type Options struct {
	// Width is the maximum visible width of the line. Zero means unlimited.
	Width int
	// Plain disables styling.
	Plain bool
}

// Line draws the values of s as nil <-> "a" <-> "b" <-> nil. Values that do
// not fit in opts.Width are replaced with an ellipsis.
func Line(s list.Seq[string], opts Options) string {
	style := func(st lipgloss.Style, text string) string {
		if opts.Plain {
			return text
		}
		return st.Render(text)
	}

	var b strings.Builder
	width := 0
	add := func(st lipgloss.Style, text string) {
		b.WriteString(style(st, text))
		width += lipgloss.Width(text)
	}

	add(endStyle, nilEnd)
	empty := true
	for v := range s.Values() {
		empty = false
		cell := fmt.Sprintf("%q", v)
		// Keep room for the closing link and nil.
		need := len(link) + lipgloss.Width(cell) + len(link) + len(nilEnd)
		if opts.Width > 0 && width+need > opts.Width {
			add(emptyStyle, ellipsis)
			return b.String()
		}
		add(linkStyle, link)
		add(cellStyle, cell)
	}
	if empty {
		add(emptyStyle, " (empty) ")
	} else {
		add(linkStyle, link)
	}
	add(endStyle, nilEnd)
	return b.String()
}
