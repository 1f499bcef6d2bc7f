package source

import (
	"context"
	"iter"
)

// Iterator provides pull-based sequential access to a stream of elements.
type Iterator[E any] interface {
	// Next returns the next element. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (E, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// FromSlice returns an Iterator over the elements of a slice.
func FromSlice[E any](elems []E) Iterator[E] {
	return &sliceIter[E]{elems: elems}
}

// FromChan returns an Iterator that receives from ch until it is closed.
// Next honors context cancellation while blocked on the channel.
func FromChan[E any](ch <-chan E) Iterator[E] {
	return &chanIter[E]{ch: ch}
}

// FromSeq returns an Iterator that pulls from a push-style iter.Seq.
// Close stops the underlying generator; it is safe to call more than once.
func FromSeq[E any](seq iter.Seq[E]) Iterator[E] {
	next, stop := iter.Pull(seq)
	return &seqIter[E]{next: next, stop: stop}
}

type sliceIter[E any] struct {
	elems []E
	index int
}

func (it *sliceIter[E]) Next(_ context.Context) (E, bool, error) {
	if it.index >= len(it.elems) {
		var zero E
		return zero, false, nil
	}
	elem := it.elems[it.index]
	it.index++
	return elem, true, nil
}

func (it *sliceIter[E]) Close() error { return nil }

type chanIter[E any] struct {
	ch <-chan E
}

func (it *chanIter[E]) Next(ctx context.Context) (E, bool, error) {
	select {
	case elem, open := <-it.ch:
		if !open {
			var zero E
			return zero, false, nil
		}
		return elem, true, nil
	case <-ctx.Done():
		var zero E
		return zero, false, ctx.Err()
	}
}

func (it *chanIter[E]) Close() error { return nil }

type seqIter[E any] struct {
	next func() (E, bool)
	stop func()
}

func (it *seqIter[E]) Next(_ context.Context) (E, bool, error) {
	elem, ok := it.next()
	if !ok {
		var zero E
		return zero, false, nil
	}
	return elem, true, nil
}

func (it *seqIter[E]) Close() error {
	it.stop()
	return nil
}
