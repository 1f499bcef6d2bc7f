package collate

// Collator is the dispatch table of an opened Plan: a mapping from sequence
// position to the callback invoked with the element found there. The driver
// consults it for every visited index and stops scanning once the largest
// bound index has been passed.
//
// The zero Collator is not usable; construct with NewCollator.
type Collator[E any] struct {
	handlers map[int]func(E)
	max      int // largest bound index, -1 while empty
}

// NewCollator returns an empty dispatch table. Empty is the identity for
// Merge.
func NewCollator[E any]() *Collator[E] {
	return &Collator[E]{
		handlers: make(map[int]func(E)),
		max:      -1,
	}
}

// Bind registers fn for index. Binding an index that already has a handler
// chains them: the existing handler runs first, then fn. Chaining order is
// the observable collision contract; in normal use each handler writes its
// own slot and the order is irrelevant.
//
// Bind does not validate index; plan construction rejects negative indices
// before anything is bound.
func (c *Collator[E]) Bind(index int, fn func(E)) {
	if prev, ok := c.handlers[index]; ok {
		c.handlers[index] = func(e E) {
			prev(e)
			fn(e)
		}
	} else {
		c.handlers[index] = fn
	}
	if index > c.max {
		c.max = index
	}
}

// Merge folds other into c as a key-wise union. On index collisions c's
// handler runs first, then other's, matching Bind's chaining order. Merge is
// associative, and an empty table is its two-sided identity.
func (c *Collator[E]) Merge(other *Collator[E]) {
	for index, fn := range other.handlers {
		c.Bind(index, fn)
	}
}

// MaxIndex returns the largest bound index. ok is false for an empty table.
// The driver uses it purely to bound the scan; it is not a correctness
// requirement.
func (c *Collator[E]) MaxIndex() (index int, ok bool) {
	return c.max, c.max >= 0
}

// Dispatch invokes the handler bound at index with elem, reporting whether
// one was bound. Positions without handlers are skipped by the driver at no
// cost beyond the lookup.
func (c *Collator[E]) Dispatch(index int, elem E) bool {
	fn, ok := c.handlers[index]
	if !ok {
		return false
	}
	fn(elem)
	return true
}

// Len returns the number of distinct bound indices.
func (c *Collator[E]) Len() int {
	return len(c.handlers)
}
