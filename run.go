package collate

// Run opens p, scans input once from position 0, and returns the combined
// result. Only the prefix up to the plan's largest requested position is
// visited.
func Run[E, A any](p *Plan[E, A], input []E) (A, error) {
	x, err := p.Open()
	if err != nil {
		var zero A
		return zero, err
	}
	x.Feed(input)
	return x.Result()
}

// RunSeq is Run over any Sequence, for containers that are not slices.
func RunSeq[E, A any](p *Plan[E, A], seq Sequence[E]) (A, error) {
	x, err := p.Open()
	if err != nil {
		var zero A
		return zero, err
	}
	x.FeedSeq(seq)
	return x.Result()
}
