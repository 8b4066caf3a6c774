// Package rng provides the app's only business capability: drawing a random
// integer within inclusive bounds.
package rng

import (
	"math/rand/v2"

	"roller/internal/stream"
)

// Generator is the interface for producing random integers.
// Implementations can be swapped (e.g. math/rand, or a stub for tests).
type Generator interface {
	// IntBetween draws one integer uniformly from [from, to] inclusive,
	// delivered as a one-shot stream. Behavior for from > to is undefined.
	IntBetween(from, to int) stream.Single[int]
}

// Source implements Generator using math/rand/v2.
type Source struct{}

// Ensure Source implements Generator.
var _ Generator = (*Source)(nil)

// IntBetween implements Generator.
func (Source) IntBetween(from, to int) stream.Single[int] {
	return stream.Just(from + rand.IntN(to-from+1))
}

// Stub implements Generator by replaying a fixed sequence of values,
// for deterministic tests. Once the sequence is exhausted it repeats the
// last value.
type Stub struct {
	Values []int
	next   int
}

// Ensure Stub implements Generator.
var _ Generator = (*Stub)(nil)

// IntBetween implements Generator. Bounds are ignored.
func (s *Stub) IntBetween(from, to int) stream.Single[int] {
	if len(s.Values) == 0 {
		return stream.Just(0)
	}
	v := s.Values[min(s.next, len(s.Values)-1)]
	s.next++
	return stream.Just(v)
}
