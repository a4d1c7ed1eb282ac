// Package waiter implements a a wait queue, where waiters can be registered to
// be notified of events. It is loosely based on the implementation in gVisor.
//
// Each registered Entry keeps its list handle, so unregistering and rotating
// entries are constant time.
package waiter

import (
	"sync"

	"hop.computer/dlist/pkg"
	"hop.computer/dlist/pkg/list"
)

type Queue[T any] struct {
	l list.List[*Entry[T]]
	m sync.RWMutex
}

type Entry[T any] struct {
	object   *T
	listener EventListener[T]

	// node is guarded by the mutex of the queue it is registered with.
	node *list.Node[*Entry[T]]
}

type EventListener[T any] interface {
	NotifyEvent(*T)
}

// EventRegister adds e to the back of the queue. Registering an entry that is
// already in the queue does nothing. An entry may only be registered with one
// queue at a time.
func (q *Queue[T]) EventRegister(e *Entry[T]) {
	q.m.Lock()
	defer q.m.Unlock()
	if e.node != nil {
		if e.node.List() == &q.l {
			return
		}
		pkg.Panicf("waiter: entry is registered with another queue")
	}
	e.node = q.l.Push(e)
}

// EventUnregister removes e from the queue. It returns true if e was
// registered.
func (q *Queue[T]) EventUnregister(e *Entry[T]) bool {
	q.m.Lock()
	defer q.m.Unlock()
	if e.node == nil || e.node.List() != &q.l {
		return false
	}
	if _, err := e.node.Destroy(); err != nil {
		return false
	}
	e.node = nil
	return true
}

// Len returns the number of registered entries.
func (q *Queue[T]) Len() int {
	q.m.RLock()
	defer q.m.RUnlock()
	return q.l.Len()
}

// Notify calls every registered listener, front to back.
func (q *Queue[T]) Notify() {
	q.m.RLock()
	defer q.m.RUnlock()
	for entry := range q.l.Forward().Values() {
		entry.listener.NotifyEvent(entry.object)
	}
}

// NotifyNext calls the listener at the front of the queue and then moves it to
// the back, so repeated calls notify waiters round-robin. It returns false if
// the queue is empty.
func (q *Queue[T]) NotifyNext() bool {
	q.m.Lock()
	defer q.m.Unlock()
	front := q.l.First()
	if front == nil {
		return false
	}
	entry := front.Get()
	if last := q.l.Last(); last != front {
		if err := front.After(last); err != nil {
			pkg.Panicf("waiter: rotating queue: %s", err)
		}
	}
	entry.listener.NotifyEvent(entry.object)
	return true
}

type functionNotifier[T any] func(*T)

func (f functionNotifier[T]) NotifyEvent(t *T) {
	f(t)
}

func NewFunctionEntry[T any](object *T, f func(*T)) *Entry[T] {
	e := Entry[T]{
		object:   object,
		listener: functionNotifier[T](f),
	}
	return &e
}

type channelNotifier[T any] chan *T

func (c channelNotifier[T]) NotifyEvent(t *T) {
	c <- t
}

func NewChannelEntry[T any](object *T, c chan *T) *Entry[T] {
	e := Entry[T]{
		object:   object,
		listener: channelNotifier[T](c),
	}
	return &e
}
