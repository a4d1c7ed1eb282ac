package list

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Op names a structural event reported to a Tracer.
type Op string

// Traced operations.
const (
	OpPush    Op = "push"
	OpUnshift Op = "unshift"
	OpBefore  Op = "before"
	OpAfter   Op = "after"
	OpRemove  Op = "remove"
	OpVisit   Op = "visit" // Validate(true)
)

// Event describes one structural change. Prev and Next are the new neighbors
// of Node for insertions, and the old neighbors for OpRemove.
type Event[T any] struct {
	Op    Op
	List  *List[T]
	Node  *Node[T]
	Prev  *Node[T]
	Next  *Node[T]
	Value T
	Index int // position of Node, OpVisit only
}

// A Tracer receives structural events from a List. It is called synchronously
// after the links are updated and must not modify the list.
type Tracer[T any] interface {
	Trace(Event[T])
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc[T any] func(Event[T])

// Trace implements Tracer.
func (f TracerFunc[T]) Trace(e Event[T]) {
	f(e)
}

// LogTracer writes every event to a logrus entry at trace level. Lists and
// nodes are logged as short labels, List1, Node1, Node2, in order of first
// appearance, so a run can be followed without pointer values. The tracer
// keeps a reference to every list and node it has labeled.
type LogTracer[T any] struct {
	log    *logrus.Entry
	labels map[any]string
	lists  int
	nodes  int
}

var _ Tracer[int] = &LogTracer[int]{}

// NewLogTracer returns a LogTracer writing to log.
func NewLogTracer[T any](log *logrus.Entry) *LogTracer[T] {
	return &LogTracer[T]{
		log:    log,
		labels: make(map[any]string),
	}
}

// Trace implements Tracer.
func (t *LogTracer[T]) Trace(e Event[T]) {
	if !t.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	fields := logrus.Fields{
		"list":  t.ListLabel(e.List),
		"node":  t.NodeLabel(e.Node),
		"prev":  t.NodeLabel(e.Prev),
		"next":  t.NodeLabel(e.Next),
		"value": e.Value,
	}
	if e.Op == OpVisit {
		fields["index"] = e.Index
	}
	t.log.WithFields(fields).Trace(string(e.Op))
}

// ListLabel returns the label of l, assigning one if needed.
func (t *LogTracer[T]) ListLabel(l *List[T]) string {
	if l == nil {
		return "-"
	}
	if s, ok := t.labels[l]; ok {
		return s
	}
	t.lists++
	s := fmt.Sprintf("List%d", t.lists)
	t.labels[l] = s
	return s
}

// NodeLabel returns the label of n, assigning one if needed.
func (t *LogTracer[T]) NodeLabel(n *Node[T]) string {
	if n == nil {
		return "-"
	}
	if s, ok := t.labels[n]; ok {
		return s
	}
	t.nodes++
	s := fmt.Sprintf("Node%d", t.nodes)
	t.labels[n] = s
	return s
}
