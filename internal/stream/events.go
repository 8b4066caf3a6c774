package stream

import "slices"

// Listener receives elements emitted by a stream.
type Listener[T any] func(T)

type subscriber[T any] struct {
	id int
	fn Listener[T]
}

// subscribers is the observer list shared by Events and Value.
// Emission iterates a snapshot, so a listener removed mid-dispatch is still
// delivered the element in flight and skipped from the next one.
type subscribers[T any] struct {
	entries []subscriber[T]
	nextID  int
	closed  bool
}

func (s *subscribers[T]) add(fn Listener[T]) *Subscription {
	if s.closed {
		return &Subscription{}
	}
	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, subscriber[T]{id: id, fn: fn})
	return &Subscription{cancel: func() { s.remove(id) }}
}

func (s *subscribers[T]) remove(id int) {
	s.entries = slices.DeleteFunc(s.entries, func(e subscriber[T]) bool {
		return e.id == id
	})
}

func (s *subscribers[T]) emit(v T) {
	if s.closed {
		return
	}
	for _, e := range slices.Clone(s.entries) {
		e.fn(v)
	}
}

func (s *subscribers[T]) close() {
	s.closed = true
	s.entries = nil
}

// Events is a multicast stream with no replay: subscribers only see elements
// emitted after they attach. Used for value-less signals (button taps) and
// raw field edits.
type Events[T any] struct {
	subs subscribers[T]
}

// NewEvents creates an empty event stream.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Emit delivers v to every current subscriber, in subscription order.
// Emit after Close is a no-op.
func (e *Events[T]) Emit(v T) {
	e.subs.emit(v)
}

// Watch attaches fn for all future emissions.
func (e *Events[T]) Watch(fn Listener[T]) *Subscription {
	return e.subs.add(fn)
}

// Close drops all subscribers and rejects further emissions. A closed stream
// simply stops delivering; it is not an error condition.
func (e *Events[T]) Close() {
	e.subs.close()
}

// Single is a one-shot stream wrapping exactly one already-produced element.
type Single[T any] struct {
	value T
}

// Just wraps v in a Single.
func Just[T any](v T) Single[T] {
	return Single[T]{value: v}
}

// Subscribe delivers the element to fn immediately, once.
func (s Single[T]) Subscribe(fn Listener[T]) *Subscription {
	fn(s.value)
	return &Subscription{}
}
