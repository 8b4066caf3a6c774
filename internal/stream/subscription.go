package stream

// Subscription is the handle returned by every Watch/Subscribe call.
// Unsubscribe removes the listener; calling it more than once is a no-op.
type Subscription struct {
	cancel func()
}

// Unsubscribe detaches the listener from its stream. Safe to call on a nil
// subscription and safe to call repeatedly.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Bag aggregates subscriptions owned by one component so they can be
// released together when that component is torn down.
type Bag struct {
	subs []*Subscription
}

// Add places a subscription in the bag.
func (b *Bag) Add(s *Subscription) {
	if s != nil {
		b.subs = append(b.subs, s)
	}
}

// Drain unsubscribes everything in the bag. After Drain no callback held by
// the bag's subscriptions fires again.
func (b *Bag) Drain() {
	for _, s := range b.subs {
		s.Unsubscribe()
	}
	b.subs = nil
}

// Len returns the number of subscriptions currently held.
func (b *Bag) Len() int {
	return len(b.subs)
}
