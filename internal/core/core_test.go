package core

import (
	"testing"
	"time"
)

func TestLinspaceIncludesEndpoints(t *testing.T) {
	xs := Linspace(-100, 100, 5)
	want := []float64{-100, -50, 0, 50, 100}
	if len(xs) != len(want) {
		t.Fatalf("len = %d, want %d", len(xs), len(want))
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("xs[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("single sample = %v", got)
	}
	if Linspace(0, 1, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestMeshgridXYIndexing(t *testing.T) {
	gx, gy := Meshgrid([]float64{1, 2, 3}, []float64{10, 20})
	if gx.W != 3 || gx.H != 2 || !gx.SameShape(gy) {
		t.Fatalf("unexpected shapes %v %v", gx.Size(), gy.Size())
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			if gx.At(col, row) != float64(col+1) {
				t.Fatalf("x(%d,%d) = %v", col, row, gx.At(col, row))
			}
			if gy.At(col, row) != float64(10*(row+1)) {
				t.Fatalf("y(%d,%d) = %v", col, row, gy.At(col, row))
			}
		}
	}
}

func TestFloatGridRangeAndIdentical(t *testing.T) {
	g := NewFloatGrid(2, 2)
	g.Set(0, 0, -1)
	g.Set(1, 1, 4)
	lo, hi := g.Range()
	if lo != -1 || hi != 4 {
		t.Fatalf("range = %v, %v", lo, hi)
	}
	o := NewFloatGrid(2, 2)
	copy(o.Values(), g.Values())
	if !g.Identical(o) {
		t.Fatalf("copies should be identical")
	}
	o.Set(0, 1, 1e-12)
	if g.Identical(o) {
		t.Fatalf("modified grid should differ")
	}
	if g.Identical(NewFloatGrid(4, 1)) {
		t.Fatalf("different shapes should differ")
	}
}

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatalf("first call should fire")
	}
	clock = clock.Add(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatalf("fired before the interval elapsed")
	}
	clock = clock.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatalf("did not fire after the interval")
	}

	clock = clock.Add(2 * time.Second)
	if !fs.ShouldStep() {
		t.Fatalf("did not fire after a stall")
	}
	if fs.ShouldStep() {
		t.Fatalf("backlog should be dropped after a stall")
	}

	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatalf("reset should fire immediately")
	}
}

func TestFixedStepRejectsNonPositiveInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}
}
