package list

import "github.com/pkg/errors"

// Node is a single element of a List. A Node is linked into at most one List
// at a time. Moving it with Before or After detaches it from wherever it was
// first.
type Node[T any] struct {
	next, prev *Node[T]
	owner      *List[T]
	value      T
	destroyed  bool
}

// NewNode returns a detached Node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// dead reports whether the handle may no longer be used. Nodes of a destroyed
// List are dead without having been visited by List.Destroy.
func (n *Node[T]) dead() bool {
	return n.destroyed || (n.owner != nil && n.owner.destroyed)
}

// Get returns the value held by the Node.
func (n *Node[T]) Get() T {
	return n.value
}

// Set replaces the value held by the Node and returns the Node.
func (n *Node[T]) Set(v T) *Node[T] {
	n.value = v
	return n
}

// List returns the List the Node is linked into, or nil if it is detached.
func (n *Node[T]) List() *List[T] {
	if n.dead() {
		return nil
	}
	return n.owner
}

// Next returns the following Node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	if n.dead() {
		return nil
	}
	return n.next
}

// Prev returns the preceding Node, or nil at the start of the list.
func (n *Node[T]) Prev() *Node[T] {
	if n.dead() {
		return nil
	}
	return n.prev
}

// Remove unlinks the Node from its list. The Node can be linked again later
// with Before or After. Removing a detached Node does nothing.
func (n *Node[T]) Remove() error {
	if n.dead() {
		return errors.Wrap(ErrDestroyed, "remove")
	}
	n.unlink()
	return nil
}

// Before moves the Node so that it immediately precedes target, in target's
// list. Nothing is modified if an error is returned.
func (n *Node[T]) Before(target *Node[T]) error {
	if err := n.checkTarget(target); err != nil {
		return errors.Wrap(err, "before")
	}
	n.unlink()
	l := target.owner
	l.link(n, target.prev, target)
	l.trace(Event[T]{Op: OpBefore, List: l, Node: n, Prev: n.prev, Next: n.next, Value: n.value})
	return nil
}

// After moves the Node so that it immediately follows target, in target's
// list. Nothing is modified if an error is returned.
func (n *Node[T]) After(target *Node[T]) error {
	if err := n.checkTarget(target); err != nil {
		return errors.Wrap(err, "after")
	}
	n.unlink()
	l := target.owner
	l.link(n, target, target.next)
	l.trace(Event[T]{Op: OpAfter, List: l, Node: n, Prev: n.prev, Next: n.next, Value: n.value})
	return nil
}

// Destroy unlinks the Node, releases its value and returns it. Every later
// structural operation on the Node fails with ErrDestroyed.
func (n *Node[T]) Destroy() (T, error) {
	var zero T
	if n.dead() {
		return zero, errors.Wrap(ErrDestroyed, "destroy")
	}
	n.unlink()
	v := n.value
	n.value = zero
	n.destroyed = true
	return v, nil
}

// Forward returns a sequence walking next links, starting with this Node.
func (n *Node[T]) Forward() Seq[T] {
	return Seq[T]{anchor: n, kind: kindNext}
}

// Backward returns a sequence walking prev links, starting with this Node.
func (n *Node[T]) Backward() Seq[T] {
	return Seq[T]{anchor: n, kind: kindPrev}
}

// Either returns a sequence producing direction-switchable cursors that start
// with this Node.
func (n *Node[T]) Either(reverse bool) Seq[T] {
	return Seq[T]{anchor: n, kind: kindAny, reverse: reverse}
}

func (n *Node[T]) checkTarget(target *Node[T]) error {
	switch {
	case n.dead():
		return ErrDestroyed
	case target == nil:
		return ErrDetachedTarget
	case target.dead():
		return ErrDestroyed
	case target == n:
		return ErrSelfInsert
	case target.owner == nil:
		return ErrDetachedTarget
	}
	return nil
}

// unlink detaches n from its owner, if any, and reports the removal to the
// owner's tracer.
func (n *Node[T]) unlink() {
	l := n.owner
	if l == nil {
		return
	}
	prev, next := n.prev, n.next
	if prev != nil {
		prev.next = next
	} else {
		l.head = next
	}
	if next != nil {
		next.prev = prev
	} else {
		l.tail = prev
	}
	n.prev = nil
	n.next = nil
	n.owner = nil
	l.count--
	l.trace(Event[T]{Op: OpRemove, List: l, Node: n, Prev: prev, Next: next, Value: n.value})
}
