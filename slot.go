package collate

// slot is a write-once cell holding one pending extracted value. Every slot
// belongs to exactly one Execution: it is written by at most one dispatch
// callback during the pass and read only after the pass has covered its
// position.
type slot[T any] struct {
	value  T
	filled bool
}

// fulfill stores the extracted value. Index uniqueness in the Collator
// guarantees at most one call per pass, so no double-write guard is needed.
func (s *slot[T]) fulfill(v T) {
	s.value = v
	s.filled = true
}

// read returns the stored value, or an unfulfilled-access error tagged with
// the position the slot was registered at.
func (s *slot[T]) read(index int) (T, error) {
	if !s.filled {
		var zero T
		return zero, unfulfilledErr(index)
	}
	return s.value, nil
}
