package render

import "github.com/go-gl/mathgl/mgl32"

// Projection parameters applied on every resize.
const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 100.0
	QuadDepth   = -3.0 // model-view translation along Z
)

// MaxTap is the last state of the tap cycle.
const MaxTap = 4

// Variant is one texture-coordinate assignment, two floats per corner
// in the order left-top, left-bottom, right-bottom, right-top.
type Variant [texCoordFloats]float32

var variants = [MaxTap + 1]Variant{
	1: {0.0, 1.0, 0.0, 0.0, 1.0, 0.0, 1.0, 1.0},
	2: {0.0, 0.5, 0.0, 0.0, 0.5, 0.0, 0.5, 0.5},
	3: {0.0, 2.0, 0.0, 0.0, 2.0, 0.0, 2.0, 2.0},
	4: {0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
}

// VariantFor returns the coordinates shown at the given tap state.
// State 0 has none: the quad is shaded flat white.
func VariantFor(tap int) (Variant, bool) {
	if tap < 1 || tap > MaxTap {
		return Variant{}, false
	}
	return variants[tap], true
}

// State is the tap counter and the projection. Only taps change the
// counter and only resizes change the projection.
type State struct {
	tapCount   int
	projection mgl32.Mat4
}

// NewState starts before the first tap with an identity projection.
func NewState() State {
	return State{projection: mgl32.Ident4()}
}

// Tap advances 0→1→2→3→4→1… and returns the new state.
func (s *State) Tap() int {
	s.tapCount = s.tapCount%MaxTap + 1
	return s.tapCount
}

// TapCount is the current tap state, 0 to MaxTap.
func (s *State) TapCount() int { return s.tapCount }

// TapFlag is the value of the shader's tap flag: 0 before the first
// tap, 1 afterwards.
func (s *State) TapFlag() int {
	if s.tapCount == 0 {
		return 0
	}
	return 1
}

// ResetProjection restores the identity projection.
func (s *State) ResetProjection() { s.projection = mgl32.Ident4() }

// Resize rebuilds the perspective projection for a width×height surface.
func (s *State) Resize(width, height int) {
	s.projection = Perspective(width, height)
}

// Projection is the matrix built by the last Resize.
func (s *State) Projection() mgl32.Mat4 { return s.projection }

// MVP composes the projection with the fixed model-view translation.
func (s *State) MVP() mgl32.Mat4 {
	return s.projection.Mul4(mgl32.Translate3D(0, 0, QuadDepth))
}

// Perspective is the projection used for a surface of the given size.
// Non-positive dimensions are treated as 1 so the aspect stays finite.
func Perspective(width, height int) mgl32.Mat4 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}
