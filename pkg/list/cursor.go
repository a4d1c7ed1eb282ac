package list

// Cursor is a single-pass position in a list. Next returns the Node at the
// current position and then advances. The anchor a cursor is created with is
// the first Node it returns. Once Next reports false the cursor is exhausted.
//
// Cursors hold plain references. Destroying the Node a cursor is about to
// return, or its List, ends the traversal.
type Cursor[T any] interface {
	Next() (*Node[T], bool)
}

// NextCursor walks next links.
type NextCursor[T any] struct {
	pos *Node[T]
}

var _ Cursor[int] = &NextCursor[int]{}

// NewNextCursor returns a cursor starting at anchor. A nil anchor yields an
// exhausted cursor.
func NewNextCursor[T any](anchor *Node[T]) *NextCursor[T] {
	return &NextCursor[T]{pos: anchor}
}

// Next implements Cursor.
func (c *NextCursor[T]) Next() (*Node[T], bool) {
	n := c.pos
	if n == nil || n.dead() {
		c.pos = nil
		return nil, false
	}
	c.pos = n.next
	return n, true
}

// PrevCursor walks prev links.
type PrevCursor[T any] struct {
	pos *Node[T]
}

var _ Cursor[int] = &PrevCursor[int]{}

// NewPrevCursor returns a cursor starting at anchor.
func NewPrevCursor[T any](anchor *Node[T]) *PrevCursor[T] {
	return &PrevCursor[T]{pos: anchor}
}

// Next implements Cursor.
func (c *PrevCursor[T]) Next() (*Node[T], bool) {
	n := c.pos
	if n == nil || n.dead() {
		c.pos = nil
		return nil, false
	}
	c.pos = n.prev
	return n, true
}

// AnyCursor walks in either direction. Changing the direction does not move
// the cursor; it only decides where the next call to Next goes after
// returning the current Node.
type AnyCursor[T any] struct {
	pos     *Node[T]
	reverse bool
}

var _ Cursor[int] = &AnyCursor[int]{}

// NewAnyCursor returns a cursor starting at anchor, walking prev links if
// reverse is set and next links otherwise.
func NewAnyCursor[T any](anchor *Node[T], reverse bool) *AnyCursor[T] {
	return &AnyCursor[T]{pos: anchor, reverse: reverse}
}

// Next implements Cursor.
func (c *AnyCursor[T]) Next() (*Node[T], bool) {
	n := c.pos
	if n == nil || n.dead() {
		c.pos = nil
		return nil, false
	}
	if c.reverse {
		c.pos = n.prev
	} else {
		c.pos = n.next
	}
	return n, true
}

// Turn flips the direction.
func (c *AnyCursor[T]) Turn() *AnyCursor[T] {
	c.reverse = !c.reverse
	return c
}

// Forward makes the cursor follow next links.
func (c *AnyCursor[T]) Forward() *AnyCursor[T] {
	c.reverse = false
	return c
}

// Reverse makes the cursor follow prev links.
func (c *AnyCursor[T]) Reverse() *AnyCursor[T] {
	c.reverse = true
	return c
}

// IsForward reports whether the cursor follows next links.
func (c *AnyCursor[T]) IsForward() bool {
	return !c.reverse
}

// IsReverse reports whether the cursor follows prev links.
func (c *AnyCursor[T]) IsReverse() bool {
	return c.reverse
}
