package collate

import "testing"

// countingSequence wraps a slice and records how many elements it yields.
type countingSequence struct {
	elems   []int
	yielded int
}

func (s *countingSequence) Visit(start, limit int, fn func(index int, elem int) bool) int {
	next := start
	for limit != 0 && next < len(s.elems) {
		s.yielded++
		if !fn(next, s.elems[next]) {
			next++
			break
		}
		next++
		if limit > 0 {
			limit--
		}
	}
	return next
}

func TestFeed_VisitsExactlyThroughMaxIndex(t *testing.T) {
	c := NewCollator[int]()
	c.Bind(1, func(int) {})
	c.Bind(4, func(int) {})

	next := Feed(c, 0, []int{0, 10, 20, 30, 40, 50, 60})
	if next != 5 {
		t.Errorf("driver consumed %d elements, want 5 (indices 0 through 4)", next)
	}
}

func TestFeed_EmptyCollatorConsumesNothing(t *testing.T) {
	c := NewCollator[int]()
	if next := Feed(c, 0, []int{1, 2, 3}); next != 0 {
		t.Errorf("next = %d, want 0", next)
	}
}

func TestFeed_ResumesFromStart(t *testing.T) {
	c := NewCollator[int]()
	var got []int
	c.Bind(3, func(n int) { got = append(got, n) })
	c.Bind(5, func(n int) { got = append(got, n) })

	next := Feed(c, 0, []int{0, 10, 20, 30})
	if next != 4 {
		t.Fatalf("after first chunk next = %d, want 4", next)
	}
	next = Feed(c, next, []int{40, 50, 60, 70})
	if next != 6 {
		t.Fatalf("after second chunk next = %d, want 6", next)
	}
	want := []int{30, 50}
	if !intSliceEqual(got, want) {
		t.Errorf("handlers saw %v, want %v", got, want)
	}
}

func TestFeed_PastMaxIsNoOp(t *testing.T) {
	c := NewCollator[int]()
	calls := 0
	c.Bind(2, func(int) { calls++ })

	next := Feed(c, 0, []int{0, 1, 2, 3})
	if next != 3 {
		t.Fatalf("next = %d, want 3", next)
	}
	again := Feed(c, next, []int{9, 9, 9})
	if again != next {
		t.Errorf("feeding past max advanced the cursor: %d", again)
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
}

func TestFeedSeq_StopsPullingAtMaxIndex(t *testing.T) {
	c := NewCollator[int]()
	var got int
	c.Bind(3, func(n int) { got = n })

	seq := &countingSequence{elems: []int{5, 6, 7, 8, 9, 10, 11, 12}}
	next := FeedSeq(c, 0, seq)
	if next != 4 {
		t.Errorf("next = %d, want 4", next)
	}
	if got != 8 {
		t.Errorf("handler saw %d, want 8", got)
	}
	if seq.yielded != 4 {
		t.Errorf("sequence yielded %d elements, want 4", seq.yielded)
	}
}

func TestFeedSeq_EmptyCollatorPullsNothing(t *testing.T) {
	c := NewCollator[int]()
	seq := &countingSequence{elems: []int{1, 2, 3}}
	if next := FeedSeq(c, 0, seq); next != 0 {
		t.Errorf("next = %d, want 0", next)
	}
	if seq.yielded != 0 {
		t.Errorf("sequence yielded %d elements, want 0", seq.yielded)
	}
}

func TestFeedSeq_ShortSequenceReturnsWhereItStopped(t *testing.T) {
	c := NewCollator[int]()
	c.Bind(10, func(int) {})

	seq := &countingSequence{elems: []int{1, 2, 3}}
	next := FeedSeq(c, 0, seq)
	if next != 3 {
		t.Errorf("next = %d, want 3 (sequence exhausted)", next)
	}
}

func TestSequenceFunc_AdaptsFunction(t *testing.T) {
	var gotStart, gotLimit int
	seq := SequenceFunc[int](func(start, limit int, fn func(int, int) bool) int {
		gotStart, gotLimit = start, limit
		return start
	})
	seq.Visit(2, 5, func(int, int) bool { return true })
	if gotStart != 2 || gotLimit != 5 {
		t.Errorf("Visit forwarded (%d, %d), want (2, 5)", gotStart, gotLimit)
	}
}

func TestRunSeq_MatchesRun(t *testing.T) {
	p := Combine(
		Sample(1, func(n int) int { return n }),
		Sample(4, func(n int) int { return n }),
	)
	input := []int{3, 6, 9, 12, 15, 18}

	fromSlice, err := Run(p, input)
	if err != nil {
		t.Fatal(err)
	}
	fromSeq, err := RunSeq(p, &countingSequence{elems: input})
	if err != nil {
		t.Fatal(err)
	}
	if fromSlice != fromSeq {
		t.Errorf("RunSeq %+v differs from Run %+v", fromSeq, fromSlice)
	}
}
