package collate

import (
	"math/rand"
	"testing"
)

// randPlan builds a random plan over int elements with indices below 16,
// so an input of 16 elements always fulfills it.
func randPlan(r *rand.Rand, depth int) *Plan[int, int] {
	if depth <= 0 || r.Intn(3) == 0 {
		idx := r.Intn(16)
		k := r.Intn(9) + 1
		return Sample(idx, func(n int) int { return n * k })
	}
	switch r.Intn(3) {
	case 0:
		b := r.Intn(100)
		return Map(randPlan(r, depth-1), func(n int) int { return n + b })
	case 1:
		return Pure[int](r.Intn(100))
	default:
		return Zip(randPlan(r, depth-1), randPlan(r, depth-1), func(a, b int) int { return a ^ b })
	}
}

func randInput(r *rand.Rand) []int {
	input := make([]int, 16+r.Intn(8))
	for i := range input {
		input[i] = r.Intn(1000)
	}
	return input
}

// mustAgree runs two plans over the same input and fails unless they
// produce the same value and consume the same number of elements.
func mustAgree(t *testing.T, trial int, p, q *Plan[int, int], input []int) {
	t.Helper()

	xp, err := p.Open()
	if err != nil {
		t.Fatalf("trial %d: %v", trial, err)
	}
	xq, err := q.Open()
	if err != nil {
		t.Fatalf("trial %d: %v", trial, err)
	}

	np := xp.Feed(input)
	nq := xq.Feed(input)
	if np != nq {
		t.Fatalf("trial %d: consumed %d vs %d elements", trial, np, nq)
	}

	vp, err := xp.Result()
	if err != nil {
		t.Fatalf("trial %d: %v", trial, err)
	}
	vq, err := xq.Result()
	if err != nil {
		t.Fatalf("trial %d: %v", trial, err)
	}
	if vp != vq {
		t.Fatalf("trial %d: results differ: %d vs %d", trial, vp, vq)
	}
}

func TestZip_LeftIdentityLaw(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		p := randPlan(r, 3)
		wrapped := Zip(Pure[int](0), p, func(_, b int) int { return b })
		mustAgree(t, trial, wrapped, p, randInput(r))
	}
}

func TestZip_RightIdentityLaw(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 100; trial++ {
		p := randPlan(r, 3)
		wrapped := Zip(p, Pure[int](0), func(a, _ int) int { return a })
		mustAgree(t, trial, wrapped, p, randInput(r))
	}
}

func TestZip_AssociativityLaw(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	add := func(a, b int) int { return a + b }
	for trial := 0; trial < 100; trial++ {
		p := randPlan(r, 2)
		q := randPlan(r, 2)
		s := randPlan(r, 2)
		left := Zip(Zip(p, q, add), s, add)
		right := Zip(p, Zip(q, s, add), add)
		mustAgree(t, trial, left, right, randInput(r))
	}
}

func TestMap_IdentityLaw(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for trial := 0; trial < 100; trial++ {
		p := randPlan(r, 3)
		mapped := Map(p, func(n int) int { return n })
		mustAgree(t, trial, mapped, p, randInput(r))
	}
}

func TestMap_CompositionLaw(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	f := func(n int) int { return n * 3 }
	g := func(n int) int { return n - 7 }
	for trial := 0; trial < 100; trial++ {
		p := randPlan(r, 3)
		twice := Map(Map(p, f), g)
		fused := Map(p, func(n int) int { return g(f(n)) })
		mustAgree(t, trial, twice, fused, randInput(r))
	}
}

func TestMap_DistributesOverZip(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	f := func(n int) int { return n + 13 }
	for trial := 0; trial < 100; trial++ {
		p := randPlan(r, 2)
		q := randPlan(r, 2)
		merge := func(a, b int) int { return a*2 + b }
		outside := Map(Zip(p, q, merge), f)
		inside := Zip(p, q, func(a, b int) int { return f(merge(a, b)) })
		mustAgree(t, trial, outside, inside, randInput(r))
	}
}
