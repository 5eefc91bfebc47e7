package motion

import (
	"math"
	"math/rand"
	"testing"
)

var defaultParams = SpringParams{Stiffness: 400, Damping: 50, Mass: 1}

func TestCoefficients(t *testing.T) {
	freq, ratio := defaultParams.Coefficients()
	if freq != 20 {
		t.Fatalf("frequency = %v, want 20", freq)
	}
	if ratio != 1.25 {
		t.Fatalf("ratio = %v, want 1.25", ratio)
	}
}

func TestProgressEndpointsAndDegenerateRange(t *testing.T) {
	if got := Progress(0, 1000); got != 0 {
		t.Fatalf("Progress(0) = %v, want 0", got)
	}
	if got := Progress(-1000, 1000); got != 1 {
		t.Fatalf("Progress(-max) = %v, want 1", got)
	}
	if got := Progress(-250, 1000); got != 0.25 {
		t.Fatalf("Progress(-250) = %v, want 0.25", got)
	}
	for _, off := range []float64{0, -10, 10, math.Inf(-1), math.NaN()} {
		got := Progress(off, 0)
		if got != 0 {
			t.Fatalf("Progress(%v, 0) = %v, want 0", off, got)
		}
	}
	if got := Progress(math.NaN(), 100); got != 0 {
		t.Fatalf("Progress(NaN) = %v, want 0", got)
	}
}

func TestProgressMonotonic(t *testing.T) {
	prev := -1.0
	for off := 50.0; off >= -1200; off -= 7 {
		p := Progress(off, 1000)
		if p < prev {
			t.Fatalf("progress decreased at offset %v: %v < %v", off, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress out of range at offset %v: %v", off, p)
		}
		prev = p
	}
}

func TestPanAndJump(t *testing.T) {
	if Pan(0) != 30 || Pan(1) != 70 || Pan(0.5) != 50 {
		t.Fatalf("unexpected pan values %v %v %v", Pan(0), Pan(0.5), Pan(1))
	}
	if got := JumpOffset(0.25, 400); got != -100 {
		t.Fatalf("JumpOffset = %v, want -100", got)
	}
	if got := JumpOffset(0.5, 0); got != 0 {
		t.Fatalf("JumpOffset on empty range = %v, want 0", got)
	}
}

func TestMaxScroll(t *testing.T) {
	if got := MaxScroll(300, 100); got != 200 {
		t.Fatalf("MaxScroll = %v, want 200", got)
	}
	if got := MaxScroll(100, 300); got != 0 {
		t.Fatalf("MaxScroll = %v, want 0 when viewport is wider", got)
	}
}

func TestSmootherConvergesWithoutOvershoot(t *testing.T) {
	s := NewSmoother(60, defaultParams)
	s.SetBounds(1100, 100)
	s.Grab()
	s.SetRaw(-500)
	s.Release()

	for i := 0; i < 180; i++ {
		s.Step()
		if off := s.Offset(); off < -500 {
			t.Fatalf("overshoot at frame %d: %v", i, off)
		}
	}
	if got := s.Offset(); math.Abs(got+500) > 1e-6 {
		t.Fatalf("Offset() = %v, want -500", got)
	}
	if got := Progress(s.Offset(), s.MaxScroll()); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("progress = %v, want 0.5", got)
	}
	if !s.Settled() {
		t.Fatal("expected smoother to be settled")
	}
}

func TestSmootherVelocitySignFollowsMotion(t *testing.T) {
	s := NewSmoother(60, defaultParams)
	s.SetBounds(1000, 100)
	s.SetRaw(-400)
	s.Step()
	if v := s.Velocity(); v >= 0 {
		t.Fatalf("velocity = %v, want negative while moving left", v)
	}
	for i := 0; i < 120; i++ {
		s.Step()
	}
	s.SetRaw(0)
	s.Step()
	if v := s.Velocity(); v <= 0 {
		t.Fatalf("velocity = %v, want positive while moving right", v)
	}
}

func TestSmootherStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSmoother(60, SpringParams{Stiffness: 900, Damping: 5, Mass: 1})
	s.SetBounds(800, 200)

	for i := 0; i < 2000; i++ {
		switch rng.Intn(4) {
		case 0:
			s.SetRaw(rng.Float64()*2000 - 1500)
		case 1:
			s.Nudge(rng.Float64()*400 - 200)
		case 2:
			s.SetBounds(200+rng.Float64()*1000, 200)
		}
		s.Step()
		st := s.State()
		if st.Smoothed < st.Min || st.Smoothed > st.Max {
			t.Fatalf("smoothed %v left bounds [%v,%v] at step %d", st.Smoothed, st.Min, st.Max, i)
		}
		if st.Raw < st.Min || st.Raw > st.Max {
			t.Fatalf("raw %v left bounds [%v,%v] at step %d", st.Raw, st.Min, st.Max, i)
		}
	}
}

func TestSmootherShrinkingBoundsPullsOffsetsBack(t *testing.T) {
	s := NewSmoother(60, defaultParams)
	s.SetBounds(1000, 0)
	s.SetRaw(-900)
	for i := 0; i < 120; i++ {
		s.Step()
	}
	s.SetBounds(300, 0)
	if s.Raw() != -300 || s.Offset() != -300 {
		t.Fatalf("raw=%v offset=%v, want both -300", s.Raw(), s.Offset())
	}
}
