package collate

// Sequence is the capability a container must provide to drive a Plan:
// ordered visitation of position-tagged elements, resumable from a given
// position, stopping early after a bounded prefix. Implementations for
// common containers live in the source package.
type Sequence[E any] interface {
	// Visit calls fn for up to limit consecutive elements starting at
	// position start, in order, stopping early if fn returns false or the
	// container runs out. A negative limit means no bound. It returns the
	// position after the last element passed to fn.
	//
	// Containers that cannot rewind may require start to be no less than
	// the position a previous Visit returned.
	Visit(start, limit int, fn func(index int, elem E) bool) int
}

// SequenceFunc adapts a function to the Sequence interface.
type SequenceFunc[E any] func(start, limit int, fn func(index int, elem E) bool) int

// Visit calls f.
func (f SequenceFunc[E]) Visit(start, limit int, fn func(index int, elem E) bool) int {
	return f(start, limit, fn)
}
