package core

import (
	"testing"
	"time"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGCopyIsIndependent(t *testing.T) {
	a := NewRNG(7)
	a.IntN(10)

	snapshot := a
	first := a.IntN(1 << 30)
	again := snapshot.IntN(1 << 30)
	if first != again {
		t.Errorf("copied generator should replay the same draw: %d vs %d", first, again)
	}
}

func TestRNGShuffleKeepsElements(t *testing.T) {
	r := NewRNG(1)
	xs := []int{0, 1, 2, 3, 4, 5}
	r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

	seen := make(map[int]bool)
	for _, x := range xs {
		seen[x] = true
	}
	if len(seen) != 6 {
		t.Errorf("shuffle lost elements: %v", xs)
	}
}

func TestRNGSign(t *testing.T) {
	r := NewRNG(3)
	pos, neg := 0, 0
	for i := 0; i < 200; i++ {
		switch r.Sign() {
		case 1:
			pos++
		case -1:
			neg++
		default:
			t.Fatal("Sign must be -1 or +1")
		}
	}
	if pos == 0 || neg == 0 {
		t.Errorf("Sign never varied: +%d -%d", pos, neg)
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		d        time.Duration
		rate     int
		expected int
	}{
		{150 * time.Millisecond, 60, 9},
		{time.Second, 60, 60},
		{time.Second, 30, 30},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
		{500 * time.Millisecond, 0, 30},
	}
	for _, tc := range tests {
		if got := TicksFor(tc.d, tc.rate); got != tc.expected {
			t.Errorf("TicksFor(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
		}
	}
}
