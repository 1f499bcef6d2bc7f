// Package source adapts external inputs to plan executions.
//
// The core package scans plain slices and Sequence values with no notion
// of where elements come from. This package bridges the gap for inputs
// that arrive incrementally or from outside the process: channels,
// pull-based iterators, push-style iter.Seq generators, and pre-chunked
// slices.
//
// # Iterators
//
// Iterator is pull-based and context-aware. Constructors:
//
//   - FromSlice: iterate over an in-memory slice
//   - FromChan: receive from a channel until it closes
//   - FromSeq: pull from an iter.Seq generator
//
// FeedIterator drives a collator from an Iterator, pulling only as many
// elements as the deepest bound index requires. RunIterator does the
// same for a whole plan, open to result.
//
// # Sequences
//
// Slices presents pre-chunked input as one seamless Sequence. Seq wraps
// an iter.Seq as a forward-only Cursor; elements are pulled lazily and
// yielded at most once.
//
// # Usage
//
//	plan := collate.Combine(
//	    collate.Sample(1, parseHeader),
//	    collate.Sample(8, parseTrailer),
//	)
//	result, err := source.RunIterator(ctx, plan, source.FromChan(frames))
package source
