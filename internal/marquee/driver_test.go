package marquee

import (
	"math"
	"testing"
)

func startDriver(t *testing.T, blockWidth float64, opts Options) (*Driver, *Scheduler) {
	t.Helper()
	s, err := BuildStrip(NewTemplate("t", "x"), 0, blockWidth)
	if err != nil {
		t.Fatalf("build strip: %v", err)
	}
	sched := NewScheduler()
	d := newDriver(s, sched, opts)
	d.Start()
	return d, sched
}

func tick(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestDriverOffsetStaysBounded(t *testing.T) {
	for _, opts := range []Options{
		{Speed: 0.5, Direction: Forward},
		{Speed: 0.5, Direction: Backward},
		{Speed: 0.3, Direction: Forward},
		{Speed: 7.7, Direction: Backward},
		{Speed: 250, Direction: Forward},
	} {
		d, sched := startDriver(t, 100, opts)
		for n := 0; n < 5000; n++ {
			sched.Tick()
			off := d.Offset()
			if off < -100 || off > 0 || math.IsNaN(off) {
				t.Fatalf("%+v frame %d: offset %v outside block range", opts, n, off)
			}
			if d.strip.Offset() != off {
				t.Fatalf("%+v frame %d: strip translated to %v, driver at %v", opts, n, d.strip.Offset(), off)
			}
		}
	}
}

func TestDriverLoopClosesExactly(t *testing.T) {
	d, sched := startDriver(t, 100, Options{Speed: 0.5, Direction: Forward})
	tick(sched, 200)
	if d.Offset() != 0 {
		t.Fatalf("expected offset 0 after 200 frames, got %v", d.Offset())
	}
	tick(sched, 1)
	if d.Offset() != -0.5 {
		t.Fatalf("expected offset -0.5 after 201 frames, got %v", d.Offset())
	}
}

func TestDriverDirectionsMirror(t *testing.T) {
	const bw = 100
	for _, n := range []int{0, 1, 37, 199, 200, 201, 1999} {
		fwd, fs := startDriver(t, bw, Options{Speed: 0.5, Direction: Forward})
		bwd, bs := startDriver(t, bw, Options{Speed: 0.5, Direction: Backward})
		tick(fs, n)
		tick(bs, n)

		// Both live in the same block range, so mirrored displacements sum to
		// a whole number of blocks.
		if r := math.Mod(fwd.Offset()+bwd.Offset(), bw); r != 0 {
			t.Errorf("n=%d: forward %v and backward %v are not mirrored (residue %v)", n, fwd.Offset(), bwd.Offset(), r)
		}
	}
}

func TestDriverPauseIsSoft(t *testing.T) {
	d, sched := startDriver(t, 100, Options{Speed: 0.5})
	ref, refSched := startDriver(t, 100, Options{Speed: 0.5})

	tick(sched, 30)
	tick(refSched, 30)
	frozen := d.Offset()

	d.Pause()
	if d.State() != Paused {
		t.Fatalf("expected paused, got %v", d.State())
	}
	tick(sched, 500)
	if d.Offset() != frozen {
		t.Fatalf("expected offset frozen at %v, got %v", frozen, d.Offset())
	}
	if sched.Pending() != 1 {
		t.Fatalf("expected paused driver to keep its frame, got %d pending", sched.Pending())
	}

	d.Resume()
	tick(sched, 45)
	tick(refSched, 45)
	if d.Offset() != ref.Offset() {
		t.Fatalf("expected resumed offset %v, got %v", ref.Offset(), d.Offset())
	}
}

func TestDriverCancel(t *testing.T) {
	d, sched := startDriver(t, 100, Options{Speed: 1})
	tick(sched, 3)
	d.Cancel()
	if d.State() != Cancelled {
		t.Fatalf("expected cancelled, got %v", d.State())
	}
	if sched.Pending() != 0 {
		t.Fatalf("expected no pending frames, got %d", sched.Pending())
	}
	at := d.Offset()
	tick(sched, 10)
	if d.Offset() != at {
		t.Fatalf("cancelled driver moved from %v to %v", at, d.Offset())
	}

	d.Start()
	d.Resume()
	if d.State() != Cancelled || sched.Pending() != 0 {
		t.Fatal("expected cancelled driver to stay cancelled")
	}
}

func TestDriverStateTransitions(t *testing.T) {
	s, _ := BuildStrip(NewTemplate("t", "x"), 0, 10)
	sched := NewScheduler()
	d := newDriver(s, sched, Options{Speed: 1})
	if d.State() != Idle {
		t.Fatalf("expected idle, got %v", d.State())
	}
	d.Pause()
	if d.State() != Idle {
		t.Fatalf("expected pause of idle driver to be ignored, got %v", d.State())
	}
	d.Start()
	if d.State() != Running || d.Handle() == 0 {
		t.Fatalf("expected running with a handle, got %v/%d", d.State(), d.Handle())
	}
	d.Start()
	if sched.Pending() != 1 {
		t.Fatalf("expected second start to be ignored, got %d pending", sched.Pending())
	}
}
