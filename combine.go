package collate

import "errors"

// Pair holds the two results of a combined plan.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Pure returns a Plan that requests no input and always yields v. It is the
// two-sided identity for Zip and Combine.
func Pure[E, A any](v A) *Plan[E, A] {
	return &Plan[E, A]{
		build: func(*Collator[E]) func() (A, error) {
			return func() (A, error) { return v, nil }
		},
	}
}

// Map post-processes a Plan's result with fn. The dispatch table is
// untouched: the same positions are read in the same single pass.
func Map[E, A, B any](p *Plan[E, A], fn func(A) B) *Plan[E, B] {
	return &Plan[E, B]{
		build: func(c *Collator[E]) func() (B, error) {
			accessor := p.build(c)
			return func() (B, error) {
				a, err := accessor()
				if err != nil {
					var zero B
					return zero, err
				}
				return fn(a), nil
			}
		},
		err: p.err,
	}
}

// Zip merges two Plans into one that extracts both requests in a single
// pass, combining their results with merge. The dispatch tables union; when
// both plans sample the same index, pa's handler runs before pb's. Zip is
// associative up to how results are merged, with Pure as identity.
func Zip[E, A, B, C any](pa *Plan[E, A], pb *Plan[E, B], merge func(A, B) C) *Plan[E, C] {
	return &Plan[E, C]{
		build: func(c *Collator[E]) func() (C, error) {
			// Left binds first: same-index collisions dispatch
			// left-then-right.
			accessA := pa.build(c)
			accessB := pb.build(c)
			return func() (C, error) {
				a, err := accessA()
				if err != nil {
					var zero C
					return zero, err
				}
				b, err := accessB()
				if err != nil {
					var zero C
					return zero, err
				}
				return merge(a, b), nil
			}
		},
		err: joinErr(pa.err, pb.err),
	}
}

// Combine is Zip with pairing: the merged Plan yields both results as a
// Pair.
func Combine[E, A, B any](pa *Plan[E, A], pb *Plan[E, B]) *Plan[E, Pair[A, B]] {
	return Zip(pa, pb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// All combines any number of same-typed Plans into one yielding their
// results in declaration order. All() with no plans yields an empty slice.
func All[E, A any](plans ...*Plan[E, A]) *Plan[E, []A] {
	var err error
	for _, p := range plans {
		err = joinErr(err, p.err)
	}
	return &Plan[E, []A]{
		build: func(c *Collator[E]) func() ([]A, error) {
			accessors := make([]func() (A, error), len(plans))
			for i, p := range plans {
				accessors[i] = p.build(c)
			}
			return func() ([]A, error) {
				out := make([]A, len(accessors))
				for i, access := range accessors {
					v, err := access()
					if err != nil {
						return nil, err
					}
					out[i] = v
				}
				return out, nil
			}
		},
		err: err,
	}
}

// joinErr merges construction errors from combined plans, preserving each
// for errors.Is checks.
func joinErr(a, b error) error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return errors.Join(a, b)
	}
}
