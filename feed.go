package collate

// Feed is the driver loop: it scans elems in order, assigning positions
// start, start+1, ..., dispatches every position bound in c, and stops as
// soon as the position passes the table's largest index. It returns the next
// unconsumed position (start plus the number of elements visited), so
// successive chunks of one logical sequence can be fed with successive
// calls.
//
// The scan is bounded by the minimal necessary prefix: for a table whose
// largest index is max, at most max+1-start elements are visited no matter
// how long elems is. An empty table visits nothing. Input shorter than the
// required positions is not an error here; unread positions surface as
// ErrUnfulfilled when their results are read.
func Feed[E any](c *Collator[E], start int, elems []E) int {
	max, ok := c.MaxIndex()
	if !ok || start > max {
		return start
	}
	next := start
	for _, e := range elems {
		c.Dispatch(next, e)
		next++
		if next > max {
			break
		}
	}
	return next
}

// FeedSeq is the driver loop over any Sequence. The remaining scan budget
// (largest bound index relative to start) is passed to the Sequence as its
// visit limit, preserving the minimal-prefix property for containers that
// produce elements lazily.
func FeedSeq[E any](c *Collator[E], start int, seq Sequence[E]) int {
	max, ok := c.MaxIndex()
	if !ok || start > max {
		return start
	}
	return seq.Visit(start, max+1-start, func(index int, elem E) bool {
		c.Dispatch(index, elem)
		return true
	})
}
