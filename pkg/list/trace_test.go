package list

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

type recorder struct {
	events []Event[string]
}

func (r *recorder) Trace(e Event[string]) {
	r.events = append(r.events, e)
}

func (r *recorder) ops() []Op {
	var out []Op
	for _, e := range r.events {
		out = append(out, e.Op)
	}
	return out
}

func TestTracerEvents(t *testing.T) {
	r := new(recorder)
	l := New(WithTracer[string](r))
	a := l.Push("a")
	b := l.Push("b")
	c := l.Unshift("c")
	assert.DeepEqual(t, []Op{OpPush, OpPush, OpUnshift}, r.ops())

	r.events = nil
	assert.NilError(t, c.After(b))
	assert.DeepEqual(t, []Op{OpRemove, OpAfter}, r.ops())
	removed := r.events[0]
	assert.Equal(t, c, removed.Node)
	assert.Check(t, is.Nil(removed.Prev))
	assert.Equal(t, a, removed.Next)
	moved := r.events[1]
	assert.Equal(t, l, moved.List)
	assert.Equal(t, b, moved.Prev)
	assert.Check(t, is.Nil(moved.Next))
	assert.Equal(t, "c", moved.Value)

	r.events = nil
	assert.NilError(t, a.Before(c))
	assert.DeepEqual(t, []Op{OpRemove, OpBefore}, r.ops())
	assert.Equal(t, b, r.events[1].Prev)
	assert.Equal(t, c, r.events[1].Next)

	// A detached node has nothing to report.
	r.events = nil
	x := NewNode("x")
	assert.NilError(t, x.Remove())
	assert.Check(t, is.Len(r.events, 0))

	// Verbose validation reports every node in order.
	assert.NilError(t, l.Validate(true))
	assert.Equal(t, 3, len(r.events))
	for i, e := range r.events {
		assert.Equal(t, OpVisit, e.Op)
		assert.Equal(t, i, e.Index)
	}
	assert.DeepEqual(t, []string{"b", "a", "c"}, []string{r.events[0].Value, r.events[1].Value, r.events[2].Value})

	r.events = nil
	assert.NilError(t, l.Validate(false))
	l.SetTracer(nil)
	l.Push("quiet")
	assert.Check(t, is.Len(r.events, 0))
}

func TestTracerFunc(t *testing.T) {
	count := 0
	l := New(WithTracer[int](TracerFunc[int](func(e Event[int]) { count++ })))
	n := l.Push(1)
	_, err := n.Destroy()
	assert.NilError(t, err)
	assert.Equal(t, 2, count)
}

func TestLogTracer(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	tracer := NewLogTracer[string](logger.WithField("test", t.Name()))
	l := New(WithTracer[string](tracer))

	a := l.Push("hello")
	b := l.Push("world")
	assert.NilError(t, a.After(b))

	entries := hook.AllEntries()
	assert.Equal(t, 4, len(entries))
	assert.Equal(t, "push", entries[0].Message)
	assert.Equal(t, logrus.TraceLevel, entries[0].Level)
	assert.Equal(t, "List1", entries[0].Data["list"])
	assert.Equal(t, "Node1", entries[0].Data["node"])
	assert.Equal(t, "-", entries[0].Data["prev"])
	assert.Equal(t, "Node2", entries[1].Data["node"])
	assert.Equal(t, "Node1", entries[1].Data["prev"])

	assert.Equal(t, "remove", entries[2].Message)
	assert.Equal(t, "Node2", entries[2].Data["next"])
	assert.Equal(t, "after", entries[3].Message)
	assert.Equal(t, "Node1", entries[3].Data["node"])
	assert.Equal(t, "Node2", entries[3].Data["prev"])
	assert.Equal(t, "hello", entries[3].Data["value"])
	assert.Equal(t, "Node1", tracer.NodeLabel(a))

	hook.Reset()
	assert.NilError(t, l.Validate(true))
	assert.Equal(t, 2, len(hook.AllEntries()))
	assert.Equal(t, 1, hook.LastEntry().Data["index"])
}

func TestLogTracerDisabled(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	l := New(WithTracer[int](NewLogTracer[int](logrus.NewEntry(logger))))
	l.Push(1)
	l.Push(2)
	assert.Check(t, is.Len(hook.AllEntries(), 0))
}
