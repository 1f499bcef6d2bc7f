package source

import (
	"context"

	"github.com/awpr/collate"
)

// FeedIterator pulls elements from it and dispatches them through c,
// assigning positions start, start+1, and so on. It pulls only while a
// bound index remains ahead, so streams longer than the deepest
// requirement are never drained. It returns the next unconsumed
// position; the iterator is left open so the caller can resume or hand
// the remainder elsewhere.
func FeedIterator[E any](ctx context.Context, c *collate.Collator[E], start int, it Iterator[E]) (int, error) {
	max, ok := c.MaxIndex()
	if !ok || start > max {
		return start, nil
	}
	next := start
	for next <= max {
		elem, ok, err := it.Next(ctx)
		if err != nil {
			return next, err
		}
		if !ok {
			return next, nil
		}
		c.Dispatch(next, elem)
		next++
	}
	return next, nil
}

// RunIterator opens p, feeds it from it, and reads the result. The
// iterator is closed before returning. Plans whose construction failed
// report that error before anything is pulled.
func RunIterator[E, A any](ctx context.Context, p *collate.Plan[E, A], it Iterator[E]) (A, error) {
	defer it.Close()
	x, err := p.Open()
	if err != nil {
		var zero A
		return zero, err
	}
	if _, err := FeedIterator(ctx, x.Collator(), 0, it); err != nil {
		var zero A
		return zero, err
	}
	return x.Result()
}
