// Package viewmodel mediates between raw UI event streams and the single
// published current-value stream. It owns no UI elements.
package viewmodel

import (
	"strconv"

	"github.com/rs/zerolog"

	"roller/internal/rng"
	"roller/internal/stream"
)

// RandomNumber is the view model for the roller screen. It subscribes to the
// externally supplied text-input stream and to its own tap sink, and
// republishes both paths into one current-value stream. The two paths are
// independent; last write wins.
type RandomNumber struct {
	current *stream.Value[string]
	taps    *stream.Events[struct{}]
	bag     stream.Bag
	closed  bool
}

// New wires the view model for its lifetime: input elements that are nil or
// empty are ignored, any other string becomes the current value verbatim,
// and each tap draws one integer in [1,100] from gen and publishes its
// decimal form. The input stream remains owned by the caller.
func New(gen rng.Generator, input *stream.Events[*string], log zerolog.Logger) *RandomNumber {
	m := &RandomNumber{
		current: stream.NewValue("0"),
		taps:    stream.NewEvents[struct{}](),
	}

	m.bag.Add(input.Watch(func(s *string) {
		if s == nil || *s == "" {
			return
		}
		log.Debug().Str("input", *s).Msg("accepted field input")
		m.current.Set(*s)
	}))

	m.bag.Add(m.taps.Watch(func(struct{}) {
		gen.IntBetween(1, 100).Subscribe(func(n int) {
			log.Debug().Int("rolled", n).Msg("rolled")
			m.current.Set(strconv.Itoa(n))
		})
	}))

	return m
}

// Current returns the readable current-value stream. New subscribers
// immediately receive the latest value ("0" until anything is accepted).
func (m *RandomNumber) Current() *stream.Value[string] {
	return m.current
}

// Taps returns the writable sink the view forwards raw button taps into.
func (m *RandomNumber) Taps() *stream.Events[struct{}] {
	return m.taps
}

// Close releases the view model's subscriptions and closes its streams,
// exactly once. Afterwards no input or tap emission mutates the current
// value, even if the input stream keeps emitting.
func (m *RandomNumber) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.bag.Drain()
	m.taps.Close()
	m.current.Close()
}
