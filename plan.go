package collate

// Plan describes which positions of a sequence of E to extract and how to
// combine the extracted values into an A. Plans are immutable: build them
// once with Sample, BulkSample, and the combinators, then run them as many
// times as needed. Each run allocates fresh state, so a Plan is safe to share
// across goroutines and across runs.
//
// A Plan built from an invalid request (negative index) is poisoned: it
// composes normally, but Open and Run report the construction error before
// touching any input.
type Plan[E, A any] struct {
	// build binds this plan's handlers into c, allocating fresh slots, and
	// returns the deferred accessor that reads them back. Called once per
	// Open; binding order is declaration order, which fixes the collision
	// contract.
	build func(c *Collator[E]) func() (A, error)
	err   error
}

// Err returns the construction error recorded while the Plan was built, or
// nil. Open and Run report the same error; Err allows checking a plan
// without opening it.
func (p *Plan[E, A]) Err() error {
	return p.err
}

// Open allocates the run state for one pass: a fresh Collator, fresh slots,
// and the deferred result accessor. Opening the same Plan twice yields fully
// independent Executions.
func (p *Plan[E, A]) Open() (*Execution[E, A], error) {
	if p.err != nil {
		return nil, p.err
	}
	c := NewCollator[E]()
	accessor := p.build(c)
	return &Execution[E, A]{
		collator: c,
		accessor: accessor,
	}, nil
}

// Execution is one opened Plan: the dispatch table and slots for a single
// pass, plus the cursor tracking how much input has been fed. An Execution
// is single-use and not safe for concurrent feeding.
type Execution[E, A any] struct {
	collator *Collator[E]
	accessor func() (A, error)
	next     int
}

// Collator exposes the dispatch table, for callers that drive the pass with
// their own traversal instead of Feed.
func (x *Execution[E, A]) Collator() *Collator[E] {
	return x.collator
}

// Feed scans elems as the next chunk of input, dispatching the positions the
// plan requires and advancing the cursor. It returns the next unconsumed
// position, so chunked input needs no bookkeeping by the caller:
//
//	x.Feed(chunk1) // positions 0..len(chunk1)-1
//	x.Feed(chunk2) // continues where chunk1 ended
//
// Feeding past the last required position is a no-op. Feeding too little is
// not an error here; it surfaces as ErrUnfulfilled only if the missing
// position's result is read.
func (x *Execution[E, A]) Feed(elems []E) int {
	x.next = Feed(x.collator, x.next, elems)
	return x.next
}

// FeedSeq is Feed over any Sequence instead of a slice.
func (x *Execution[E, A]) FeedSeq(seq Sequence[E]) int {
	x.next = FeedSeq(x.collator, x.next, seq)
	return x.next
}

// Pos returns the next position Feed will assign.
func (x *Execution[E, A]) Pos() int {
	return x.next
}

// Done reports whether every position the plan requires has been passed, so
// chunked callers can stop feeding early.
func (x *Execution[E, A]) Done() bool {
	max, ok := x.collator.MaxIndex()
	return !ok || x.next > max
}

// Result evaluates the deferred accessor, reading back the filled slots. It
// must be called after the positions the plan requires have been fed;
// otherwise it reports ErrUnfulfilled naming the first missing position.
// Result does not consume the Execution and may be called again.
func (x *Execution[E, A]) Result() (A, error) {
	return x.accessor()
}
