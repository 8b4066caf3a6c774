// Package stream provides the small reactive primitives the app is wired
// with: a multicast-with-replay value container, plain event streams, and
// scoped subscription disposal.
//
// Core abstractions:
//   - Value: a stream that retains its latest element and replays it to new
//     subscribers (the single piece of state the app tracks)
//   - Events: a plain multicast stream with no replay (button taps, field
//     edits)
//   - Single: a one-shot stream carrying exactly one element
//   - Subscription/Bag: per-owner disposal, released together on teardown
//
// Dispatch is cooperative and single-threaded: every emission happens on the
// UI event loop, so no locking is used anywhere in this package.
package stream
