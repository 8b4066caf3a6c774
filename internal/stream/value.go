package stream

// Value is a multicast stream that retains its most recent element and
// replays it to each new subscriber. It is the app's only piece of shared
// state: written by the view model, watched by the view bindings.
type Value[T any] struct {
	last T
	subs subscribers[T]
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{last: initial}
}

// Get returns the most recent element.
func (v *Value[T]) Get() T {
	return v.last
}

// Set stores next as the current element and notifies every subscriber.
// Set after Close is a no-op.
func (v *Value[T]) Set(next T) {
	if v.subs.closed {
		return
	}
	v.last = next
	v.subs.emit(next)
}

// Watch attaches fn, immediately replaying the current element to it, then
// delivering every subsequent Set.
func (v *Value[T]) Watch(fn Listener[T]) *Subscription {
	sub := v.subs.add(fn)
	if !v.subs.closed {
		fn(v.last)
	}
	return sub
}

// Close drops all subscribers and freezes the value; later Sets are ignored.
func (v *Value[T]) Close() {
	v.subs.close()
}
