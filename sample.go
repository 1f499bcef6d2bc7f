package collate

import "fmt"

// Sample returns a Plan extracting the element at index, transformed by fn.
// The index must be non-negative; a negative index poisons the plan, and the
// error is reported by Open or Run before any input is read.
func Sample[E, A any](index int, fn func(E) A) *Plan[E, A] {
	if index < 0 {
		return &Plan[E, A]{
			build: func(*Collator[E]) func() (A, error) {
				return func() (A, error) {
					var zero A
					return zero, negativeIndexErr("Sample", index)
				}
			},
			err: negativeIndexErr("Sample", index),
		}
	}
	return &Plan[E, A]{
		build: func(c *Collator[E]) func() (A, error) {
			s := new(slot[A])
			c.Bind(index, func(e E) {
				s.fulfill(fn(e))
			})
			return func() (A, error) {
				return s.read(index)
			}
		},
	}
}

// BulkSample returns a Plan extracting the element at every position in
// indices, transformed by fn, as a slice in the shape of indices. Duplicate
// indices are legal: each occurrence produces its own entry, and the single
// handler bound for that index fills all of them.
//
//	BulkSample([]int{3, 1, 1, 4}, id) over [a b c d e]  ==>  [d b b e]
//
// Any negative index poisons the plan.
func BulkSample[E, A any](indices []int, fn func(E) A) *Plan[E, []A] {
	for pos, index := range indices {
		if index < 0 {
			err := fmt.Errorf("BulkSample: indices[%d] = %d: %w", pos, index, ErrNegativeIndex)
			return &Plan[E, []A]{
				build: func(*Collator[E]) func() ([]A, error) {
					return func() ([]A, error) { return nil, err }
				},
				err: err,
			}
		}
	}
	// Capture the request shape; the plan must stay valid if the caller
	// mutates the slice afterwards.
	request := make([]int, len(indices))
	copy(request, indices)

	return &Plan[E, []A]{
		build: func(c *Collator[E]) func() ([]A, error) {
			slots := make([]slot[A], len(request))

			// One handler per distinct index fills every position that
			// requested it. Distinct indices bind in first-occurrence
			// order to keep runs deterministic.
			positions := make(map[int][]int, len(request))
			order := make([]int, 0, len(request))
			for pos, index := range request {
				if _, seen := positions[index]; !seen {
					order = append(order, index)
				}
				positions[index] = append(positions[index], pos)
			}
			for _, index := range order {
				targets := positions[index]
				c.Bind(index, func(e E) {
					v := fn(e)
					for _, pos := range targets {
						slots[pos].fulfill(v)
					}
				})
			}

			return func() ([]A, error) {
				out := make([]A, len(request))
				for pos := range slots {
					v, err := slots[pos].read(request[pos])
					if err != nil {
						return nil, err
					}
					out[pos] = v
				}
				return out, nil
			}
		},
	}
}
