package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"gotest.tools/assert"

	"hop.computer/dlist/pkg/list"
)

func TestLine(t *testing.T) {
	l := list.New[string]()
	assert.Equal(t, "nil (empty) nil", Line(l.Forward(), Options{Plain: true}))

	l.Push("hello")
	l.Push("world")
	assert.Equal(t, `nil <-> "hello" <-> "world" <-> nil`, Line(l.Forward(), Options{Plain: true}))
	assert.Equal(t, `nil <-> "world" <-> "hello" <-> nil`, Line(l.Backward(), Options{Plain: true}))
	assert.Equal(t, `nil <-> "world" <-> nil`, Line(l.Last().Forward(), Options{Plain: true}))
}

func TestLineWidth(t *testing.T) {
	l := list.New[string]()
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Push(s)
	}
	full := Line(l.Forward(), Options{Plain: true})
	assert.Equal(t, `nil <-> "a" <-> "b" <-> "c" <-> "d" <-> nil`, full)
	assert.Equal(t, full, Line(l.Forward(), Options{Plain: true, Width: len(full)}))

	short := Line(l.Forward(), Options{Plain: true, Width: 30})
	assert.Equal(t, `nil <-> "a" <-> "b" ...`, short)
	assert.Assert(t, len(short) <= 30)
}

func TestLineStyledWidth(t *testing.T) {
	l := list.New[string]()
	l.Push("x")
	styled := Line(l.Forward(), Options{})
	assert.Equal(t, len(`nil <-> "x" <-> nil`), lipgloss.Width(styled))
}
