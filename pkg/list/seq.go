package list

import "iter"

type cursorKind int

const (
	kindNext cursorKind = iota
	kindPrev
	kindAny
)

// Seq describes how to build a cursor: which kind, where it starts and which
// way it goes. Every traversal builds a new cursor, so traversals of the same
// Seq never interfere with each other. A Seq taken from a List looks up the
// list's head or tail when the cursor is built, not when the Seq is created.
//
// Seq is a small value type and may be copied freely.
type Seq[T any] struct {
	list    *List[T]
	anchor  *Node[T]
	kind    cursorKind
	reverse bool
}

func (s Seq[T]) backwards() bool {
	return s.kind == kindPrev || (s.kind == kindAny && s.reverse)
}

func (s Seq[T]) start() *Node[T] {
	if s.list == nil {
		return s.anchor
	}
	if s.backwards() {
		return s.list.Last()
	}
	return s.list.First()
}

// Cursor returns a new cursor at the start of the sequence. Sequences made by
// Either return an *AnyCursor.
func (s Seq[T]) Cursor() Cursor[T] {
	switch s.kind {
	case kindPrev:
		return NewPrevCursor(s.start())
	case kindAny:
		return NewAnyCursor(s.start(), s.reverse)
	default:
		return NewNextCursor(s.start())
	}
}

// AnyCursor returns a new direction-switchable cursor at the start of the
// sequence, heading the way the sequence does.
func (s Seq[T]) AnyCursor() *AnyCursor[T] {
	return NewAnyCursor(s.start(), s.backwards())
}

// All returns an iterator over the Nodes of the sequence. The cursor has
// already moved past a Node when it is yielded, so the yielded Node may be
// removed during iteration.
func (s Seq[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		c := s.Cursor()
		for n, ok := c.Next(); ok; n, ok = c.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of the sequence.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range s.All() {
			if !yield(n.Get()) {
				return
			}
		}
	}
}
