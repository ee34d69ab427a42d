package viewport

import (
	"math"
	"testing"
)

func newTestState() *State {
	st := NewState(1000, 800, 0, 0)
	st.Resize(400, 300)
	return st
}

func TestStateDefaults(t *testing.T) {
	st := newTestState()
	if got := st.Scale(); got != 1 {
		t.Errorf("Scale() = %v, want 1", got)
	}
	if got := st.Offset(); got != Pt(0, 0) {
		t.Errorf("Offset() = %v, want (0,0)", got)
	}
	if got, want := st.MinScale(), 30.0/800; got != want {
		t.Errorf("MinScale() = %v, want %v", got, want)
	}
	if got, want := st.MaxScale(), float64(DefaultMaxScale); got != want {
		t.Errorf("MaxScale() = %v, want %v", got, want)
	}
}

func TestStateMinScaleSmallImage(t *testing.T) {
	// An image already below the pixel floor must still allow scale 1.
	st := NewState(10, 10, 0, 0)
	if got := st.MinScale(); got != 1 {
		t.Errorf("MinScale() = %v, want 1", got)
	}
}

func TestSetScaleClamps(t *testing.T) {
	st := newTestState()
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 2, 2},
		{"below floor", 1e-6, st.MinScale()},
		{"above ceiling", 1e6, DefaultMaxScale},
		{"at floor", st.MinScale(), st.MinScale()},
		{"at ceiling", DefaultMaxScale, DefaultMaxScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := st.SetScale(tt.in); got != tt.want {
				t.Errorf("SetScale(%v) = %v, want %v", tt.in, got, tt.want)
			}
			// Setting the clamped value again must be a fixed point.
			if got := st.SetScale(tt.want); got != tt.want {
				t.Errorf("SetScale(%v) not idempotent, got %v", tt.want, got)
			}
		})
	}
}

func TestSetOffsetClamps(t *testing.T) {
	st := newTestState()
	if got, want := st.SetOffset(Pt(100, 100)), Pt(100, 100); got != want {
		t.Errorf("SetOffset = %v, want %v", got, want)
	}
	if got, want := st.SetOffset(Pt(-50, 900)), Pt(0, 500); got != want {
		t.Errorf("SetOffset = %v, want %v", got, want)
	}
}

func TestResizeZeroTolerated(t *testing.T) {
	st := newTestState()
	st.Resize(0, 0)
	if w, h := st.ViewSize(); w != 0 || h != 0 {
		t.Errorf("ViewSize() = %d,%d, want 0,0", w, h)
	}
	st.Resize(-5, -7)
	if w, h := st.ViewSize(); w != 0 || h != 0 {
		t.Errorf("ViewSize() after negative resize = %d,%d, want 0,0", w, h)
	}
	st.Resize(640, 480)
	if w, h := st.ViewSize(); w != 640 || h != 480 {
		t.Errorf("ViewSize() = %d,%d, want 640,480", w, h)
	}
}

func TestResizeKeepsOffsetInRegion(t *testing.T) {
	st := newTestState()
	st.SetOffset(Pt(600, 500))

	// Growing the view keeps the offset where it was: the scroll region
	// still contains the visible box, so nothing snaps.
	st.Resize(1000, 800)
	if got := st.Offset(); got != Pt(600, 500) {
		t.Errorf("Offset() after grow = %v, want (600,500)", got)
	}

	// Once scrolled back to the image edge, the region collapses and the
	// offset pins there.
	st.SetOffset(Pt(0, 0))
	if got := st.SetOffset(Pt(-100, -100)); got != Pt(0, 0) {
		t.Errorf("Offset() at pinned edge = %v, want (0,0)", got)
	}
}

func TestScaledImageBounds(t *testing.T) {
	st := newTestState()
	st.SetScale(0.5)
	if got, want := st.ScaledImageBounds(), R(0, 0, 500, 400); got != want {
		t.Errorf("ScaledImageBounds() = %v, want %v", got, want)
	}
}

func TestOffsetInsideRegionAfterEvents(t *testing.T) {
	// Containment: wherever we push the state, the visible box must stay
	// inside the scroll region.
	st := newTestState()
	moves := []Point{
		Pt(1e6, 1e6), Pt(-1e6, -1e6), Pt(300, 250), Pt(599.9, 0),
	}
	scales := []float64{1, 0.5, 0.1, 4, 32}
	for _, sc := range scales {
		st.SetScale(sc)
		st.ClampOffset()
		for _, mv := range moves {
			st.SetOffset(mv)
			region := ScrollRegion(st.ScaledImageBounds(), st.ViewBounds())
			off := st.Offset()
			if off.X < region.Min.X-1e-9 || off.Y < region.Min.Y-1e-9 {
				t.Fatalf("scale %v move %v: offset %v below region %v", sc, mv, off, region)
			}
			hiX := math.Max(region.Max.X-400, region.Min.X)
			hiY := math.Max(region.Max.Y-300, region.Min.Y)
			if off.X > hiX+1e-9 || off.Y > hiY+1e-9 {
				t.Fatalf("scale %v move %v: offset %v beyond region %v", sc, mv, off, region)
			}
		}
	}
}
