package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTapSequence(t *testing.T) {
	var s State
	if got := s.TapCount(); got != 0 {
		t.Fatalf("initial state = %d, want 0", got)
	}
	for n := 1; n <= 41; n++ {
		got := s.Tap()
		want := (n-1)%4 + 1
		if got != want {
			t.Fatalf("after %d taps state = %d, want %d", n, got, want)
		}
		if s.TapCount() == 0 {
			t.Fatalf("state 0 re-entered after %d taps", n)
		}
	}
}

func TestTapFlag(t *testing.T) {
	s := NewState()
	if s.TapFlag() != 0 {
		t.Errorf("flag before first tap = %d, want 0", s.TapFlag())
	}
	for i := 0; i < 8; i++ {
		s.Tap()
		if s.TapFlag() != 1 {
			t.Errorf("flag at state %d = %d, want 1", s.TapCount(), s.TapFlag())
		}
	}
}

// referencePerspective builds the column-major GL perspective matrix by hand.
func referencePerspective(fovDeg, aspect, near, far float64) [16]float64 {
	f := 1 / math.Tan(fovDeg*math.Pi/180/2)
	var m [16]float64
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

func TestResizeProjection(t *testing.T) {
	s := NewState()
	if s.Projection() != mgl32.Ident4() {
		t.Fatalf("initial projection is not identity")
	}
	s.Resize(800, 600)

	want := referencePerspective(45, 800.0/600.0, 0.1, 100)
	got := s.Projection()
	for i := range want {
		if d := math.Abs(float64(got[i]) - want[i]); d > 1e-5 {
			t.Errorf("projection[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResizeZeroHeight(t *testing.T) {
	s := NewState()
	s.Resize(640, 0)
	for i, v := range s.Projection() {
		if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
			t.Fatalf("projection[%d] = %v for zero height", i, v)
		}
	}
}

func TestMVPTranslatesQuad(t *testing.T) {
	s := NewState()
	mvp := s.MVP()
	// With an identity projection the MVP is just the model-view.
	want := mgl32.Translate3D(0, 0, -3)
	if !mvp.ApproxEqual(want) {
		t.Errorf("MVP = %v, want %v", mvp, want)
	}

	s.Resize(800, 600)
	centre := s.MVP().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if centre.W() <= 0 {
		t.Errorf("quad centre w = %v, want in front of the camera", centre.W())
	}
}

func TestVariantOrientation(t *testing.T) {
	v, ok := VariantFor(1)
	if !ok {
		t.Fatal("no variant for state 1")
	}
	// Corners: 0 left-top, 1 left-bottom, 2 right-bottom, 3 right-top.
	corner := func(i int) [2]float32 { return [2]float32{v[2*i], v[2*i+1]} }
	if got := corner(1); got != [2]float32{0, 0} {
		t.Errorf("left-bottom = %v, want (0,0)", got)
	}
	if got := corner(3); got != [2]float32{1, 1} {
		t.Errorf("right-top = %v, want (1,1)", got)
	}
}

func TestVariantTable(t *testing.T) {
	tests := []struct {
		tap  int
		ok   bool
		want Variant
	}{
		{0, false, Variant{}},
		{1, true, Variant{0, 1, 0, 0, 1, 0, 1, 1}},
		{2, true, Variant{0, 0.5, 0, 0, 0.5, 0, 0.5, 0.5}},
		{3, true, Variant{0, 2, 0, 0, 2, 0, 2, 2}},
		{4, true, Variant{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}},
		{5, false, Variant{}},
	}
	for _, tt := range tests {
		got, ok := VariantFor(tt.tap)
		if ok != tt.ok || got != tt.want {
			t.Errorf("VariantFor(%d) = %v, %v; want %v, %v", tt.tap, got, ok, tt.want, tt.ok)
		}
	}
}
