// Package list implements a doubly-linked list with stable element handles.
//
// Head and tail are tracked internally, as is the number of linked nodes, so
// every operation except Validate is constant time. Nodes are moved, removed
// and destroyed through their own methods; a Node knows which List it belongs
// to and keeps that List's count current. The list is not thread-safe.
package list

import (
	"github.com/pkg/errors"

	"hop.computer/dlist/pkg"
)

// List is a doubly-linked list of Nodes. The zero value is an empty list ready
// to use.
type List[T any] struct {
	head, tail *Node[T]
	count      int
	tracer     Tracer[T]
	destroyed  bool
}

// An Option configures a List created with New.
type Option[T any] func(*List[T])

// WithTracer installs t as the receiver of structural mutation events.
func WithTracer[T any](t Tracer[T]) Option[T] {
	return func(l *List[T]) {
		l.tracer = t
	}
}

// New returns an empty List configured by opts.
func New[T any](opts ...Option[T]) *List[T] {
	l := new(List[T])
	for _, o := range opts {
		o(l)
	}
	return l
}

// SetTracer replaces the tracer. A nil tracer disables tracing.
func (l *List[T]) SetTracer(t Tracer[T]) {
	l.tracer = t
}

// Len returns the number of linked nodes.
func (l *List[T]) Len() int {
	return l.count
}

// First returns the head of the list, or nil if the list is empty.
func (l *List[T]) First() *Node[T] {
	return l.head
}

// Last returns the tail of the list, or nil if the list is empty.
func (l *List[T]) Last() *Node[T] {
	return l.tail
}

// Push appends v to the end of the list and returns its Node.
func (l *List[T]) Push(v T) *Node[T] {
	l.mustBeAlive("push")
	n := NewNode(v)
	l.link(n, l.tail, nil)
	l.trace(Event[T]{Op: OpPush, List: l, Node: n, Prev: n.prev, Value: v})
	return n
}

// Pop removes the last Node and returns its value. The boolean is false if the
// list was empty.
func (l *List[T]) Pop() (T, bool) {
	return l.take(l.tail)
}

// Unshift prepends v to the start of the list and returns its Node.
func (l *List[T]) Unshift(v T) *Node[T] {
	l.mustBeAlive("unshift")
	n := NewNode(v)
	l.link(n, nil, l.head)
	l.trace(Event[T]{Op: OpUnshift, List: l, Node: n, Next: n.next, Value: v})
	return n
}

// Shift removes the first Node and returns its value. The boolean is false if
// the list was empty.
func (l *List[T]) Shift() (T, bool) {
	return l.take(l.head)
}

// Destroy releases every Node at once. Nodes still held by callers report
// ErrDestroyed from then on. The List must not be pushed to afterwards.
func (l *List[T]) Destroy() {
	l.destroyed = true
	l.head = nil
	l.tail = nil
	l.count = 0
}

// Forward returns a sequence walking the list from its head. The head is
// looked up each time a traversal starts.
func (l *List[T]) Forward() Seq[T] {
	return Seq[T]{list: l, kind: kindNext}
}

// Backward returns a sequence walking the list from its tail.
func (l *List[T]) Backward() Seq[T] {
	return Seq[T]{list: l, kind: kindPrev}
}

// Either returns a sequence of direction-switchable cursors starting at the
// head, or at the tail if reverse is set.
func (l *List[T]) Either(reverse bool) Seq[T] {
	return Seq[T]{list: l, kind: kindAny, reverse: reverse}
}

// Validate walks the list from head to tail and checks every link. It returns
// an error wrapping ErrInconsistent for the first problem found. If verbose is
// set, every visited Node is reported to the tracer. This function is O(n).
func (l *List[T]) Validate(verbose bool) error {
	if l.destroyed {
		return errors.Wrap(ErrDestroyed, "validate")
	}
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.count == 0) {
		return errors.Wrapf(ErrInconsistent, "empty list mismatch: head=%t tail=%t count=%d",
			l.head != nil, l.tail != nil, l.count)
	}
	var prev *Node[T]
	i := 0
	for n := l.head; n != nil; n = n.next {
		if i == l.count {
			return errors.Wrapf(ErrInconsistent, "more than %d nodes reachable from head", l.count)
		}
		if n.prev != prev {
			return errors.Wrapf(ErrInconsistent, "node %d: prev link is broken", i)
		}
		if n.owner != l {
			return errors.Wrapf(ErrInconsistent, "node %d: owned by another list", i)
		}
		if n.destroyed {
			return errors.Wrapf(ErrInconsistent, "node %d: destroyed node is still linked", i)
		}
		if verbose {
			l.trace(Event[T]{Op: OpVisit, List: l, Node: n, Prev: n.prev, Next: n.next, Value: n.value, Index: i})
		}
		prev = n
		i++
	}
	if prev != l.tail {
		return errors.Wrapf(ErrInconsistent, "tail is not the last of %d nodes reachable from head", i)
	}
	if i != l.count {
		return errors.Wrapf(ErrInconsistent, "count is %d, but %d nodes are reachable", l.count, i)
	}
	return nil
}

// link places n between prev and next, either of which is nil at a boundary.
// n must be detached.
func (l *List[T]) link(n, prev, next *Node[T]) {
	n.owner = l
	n.prev = prev
	n.next = next
	if prev != nil {
		prev.next = n
	} else {
		l.head = n
	}
	if next != nil {
		next.prev = n
	} else {
		l.tail = n
	}
	l.count++
}

func (l *List[T]) take(n *Node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	v, err := n.Destroy()
	if err != nil {
		pkg.Panicf("boundary node of a live list is destroyed: %s", err)
	}
	return v, true
}

func (l *List[T]) mustBeAlive(op string) {
	if l.destroyed {
		pkg.Panicf("list: %s on destroyed list", op)
	}
}

func (l *List[T]) trace(e Event[T]) {
	if l.tracer != nil {
		l.tracer.Trace(e)
	}
}
