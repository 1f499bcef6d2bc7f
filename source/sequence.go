package source

import (
	"iter"

	"github.com/awpr/collate"
	"github.com/awpr/collate/util"
)

// Slices presents pre-chunked input as a single Sequence with seamless
// global indexing. Empty chunks are dropped up front. Visiting is
// stateless, so the same value can back any number of executions.
func Slices[E any](chunks ...[]E) collate.Sequence[E] {
	return chunkSeq[E](util.Filter(chunks, func(chunk []E) bool { return len(chunk) > 0 }))
}

type chunkSeq[E any] [][]E

func (s chunkSeq[E]) Visit(start, limit int, fn func(index int, elem E) bool) int {
	next := start
	base := 0
	for _, chunk := range s {
		if limit == 0 {
			return next
		}
		if next >= base+len(chunk) {
			base += len(chunk)
			continue
		}
		for _, elem := range chunk[next-base:] {
			if limit == 0 {
				return next
			}
			stop := !fn(next, elem)
			next++
			if limit > 0 {
				limit--
			}
			if stop {
				return next
			}
		}
		base += len(chunk)
	}
	return next
}

// Cursor adapts a push-style iter.Seq to the Sequence interface. It is
// forward-only: each element is pulled lazily and yielded at most once,
// so a Cursor backs a single execution. Visits starting behind the
// cursor yield nothing; visits starting ahead discard the skipped
// elements.
type Cursor[E any] struct {
	next func() (E, bool)
	stop func()
	pos  int
}

// Seq wraps an iter.Seq in a Cursor.
func Seq[E any](seq iter.Seq[E]) *Cursor[E] {
	next, stop := iter.Pull(seq)
	return &Cursor[E]{next: next, stop: stop}
}

// Visit implements collate.Sequence.
func (s *Cursor[E]) Visit(start, limit int, fn func(index int, elem E) bool) int {
	if start < s.pos {
		return s.pos
	}
	for s.pos < start {
		if _, ok := s.next(); !ok {
			return s.pos
		}
		s.pos++
	}
	for limit != 0 {
		elem, ok := s.next()
		if !ok {
			return s.pos
		}
		stop := !fn(s.pos, elem)
		s.pos++
		if limit > 0 {
			limit--
		}
		if stop {
			break
		}
	}
	return s.pos
}

// Pos returns the index of the next element the cursor will yield.
func (s *Cursor[E]) Pos() int { return s.pos }

// Stop releases the underlying generator. The cursor yields nothing
// afterwards. Safe to call more than once.
func (s *Cursor[E]) Stop() {
	s.stop()
}
