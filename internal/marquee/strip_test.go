package marquee

import (
	"errors"
	"math"
	"testing"
)

func TestBuildStripCoversTwiceWrapWidth(t *testing.T) {
	tpl := NewTemplate("t", "content")
	for _, bw := range []float64{0.3, 1, 7, 100, 333.3, 5000} {
		for _, ww := range []float64{0, 1, 99, 300, 1000, 1234.5} {
			s, err := BuildStrip(tpl, ww, bw)
			if err != nil {
				t.Fatalf("B=%v W=%v: unexpected error: %v", bw, ww, err)
			}
			if s.Width() < 2*ww {
				t.Errorf("B=%v W=%v: expected width >= %v, got %v", bw, ww, 2*ww, s.Width())
			}
			if s.Len() < 2 {
				t.Errorf("B=%v W=%v: expected at least 2 blocks, got %d", bw, ww, s.Len())
			}
			if bound := blocksNeeded(ww, bw) + 1; s.Len() > bound {
				t.Errorf("B=%v W=%v: expected at most %d blocks, got %d", bw, ww, bound, s.Len())
			}
		}
	}
}

func TestBuildStripScenario(t *testing.T) {
	s, err := BuildStrip(NewTemplate("t", "x"), 300, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Width() < 600 {
		t.Fatalf("expected width >= 600, got %v", s.Width())
	}
	if s.Len() != 6 {
		t.Fatalf("expected 6 blocks, got %d", s.Len())
	}
}

func TestBuildStripSingleLiveBlock(t *testing.T) {
	s, err := BuildStrip(NewTemplate("t", "hello"), 250, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	live := 0
	for i := 0; i < s.Len(); i++ {
		b := s.Block(i)
		if b.Live {
			live++
		}
		if b.Text != "hello" {
			t.Fatalf("block %d: expected clone of template, got %q", i, b.Text)
		}
	}
	if live != 1 || !s.Block(0).Live {
		t.Fatalf("expected exactly the first block to be live, got %d live", live)
	}
}

func TestBuildStripRejectsDegenerateGeometry(t *testing.T) {
	tpl := NewTemplate("t", "x")
	for _, bw := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		s, err := BuildStrip(tpl, 100, bw)
		if !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("B=%v: expected ErrDegenerateGeometry, got %v", bw, err)
		}
		if s != nil {
			t.Errorf("B=%v: expected no strip", bw)
		}
	}
	if _, err := BuildStrip(tpl, math.Inf(1), 10); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
	if _, err := BuildStrip(nil, 10, 10); !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("expected ErrMissingTemplate, got %v", err)
	}
}

func TestStripEachProjectsPositions(t *testing.T) {
	s, err := BuildStrip(NewTemplate("t", "x"), 100, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.translate(-12)

	var xs []float64
	s.Each(func(i int, x float64, b Block) bool {
		xs = append(xs, x)
		return i < 2
	})
	want := []float64{-12, 18, 48}
	if len(xs) != len(want) {
		t.Fatalf("expected early stop after 3 blocks, got %v", xs)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("expected positions %v, got %v", want, xs)
		}
	}
}

func TestMeasureBlock(t *testing.T) {
	m := MeasurerFunc(func(s string) float64 { return float64(len(s)) * 8 })

	w, err := MeasureBlock(m, NewTemplate("t", "abcd"), StripLayout{Gap: 16})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 48 {
		t.Fatalf("expected block width 48, got %v", w)
	}

	if _, err := MeasureBlock(m, NewTemplate("t", ""), StripLayout{}); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("expected ErrDegenerateGeometry for empty content, got %v", err)
	}
	if _, err := MeasureBlock(m, nil, StripLayout{}); !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("expected ErrMissingTemplate, got %v", err)
	}
}

func TestBuildStripBoundsBlockCount(t *testing.T) {
	tpl := NewTemplate("t", "x")

	s, err := BuildStrip(tpl, MaxBlocks/2, 1)
	if err != nil {
		t.Fatalf("expected a strip at the bound, got %v", err)
	}
	if s.Len() != MaxBlocks {
		t.Fatalf("expected %d blocks, got %d", MaxBlocks, s.Len())
	}

	for _, ww := range []float64{MaxBlocks/2 + 1, 1e15, 1e300, math.MaxFloat64} {
		s, err := BuildStrip(tpl, ww, 1)
		if !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("W=%v: expected ErrInvalidWidth, got %v", ww, err)
		}
		if s != nil {
			t.Errorf("W=%v: expected no strip", ww)
		}
	}
}
