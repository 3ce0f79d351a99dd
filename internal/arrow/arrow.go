// Package arrow turns the most recent pointer displacement into the pose of
// a single arrow sprite.
package arrow

import "math"

// ScaleDiv divides the delta length into a scale factor.
const ScaleDiv = 5

// Initial pose shown before the first step.
const (
	InitialRotation = math.Pi / 4
	InitialScaleX   = 0.25
	InitialScaleY   = 0.45
)

// Pose is the arrow sprite's rotation (radians, counter-clockwise from up)
// and non-uniform scale.
type Pose struct {
	Rotation       float64
	ScaleX, ScaleY float64
}

// State tracks the last observed cursor position and the latest non-zero
// displacement.
type State struct {
	PrevX, PrevY int
	DX, DY       int
}

// Observe records a cursor position. The delta only changes when the cursor
// actually moved, so a resting cursor keeps pointing where it last went.
// It reports whether the delta changed.
func (s *State) Observe(x, y int) bool {
	if x == s.PrevX && y == s.PrevY {
		return false
	}
	s.DX, s.DY = s.PrevX-x, s.PrevY-y
	s.PrevX, s.PrevY = x, y
	return true
}

// Pose derives the sprite pose from the stored delta.
func (s *State) Pose() Pose {
	f := ScaleFactor(s.DX, s.DY)
	return Pose{
		Rotation: Angle(s.DX, s.DY),
		ScaleX:   0.1 * f,
		ScaleY:   0.2 * f,
	}
}

// Angle is the signed angle from the up vector to (dx, dy). A zero delta
// yields 0.
func Angle(dx, dy int) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(float64(dx), float64(dy))
}

// ScaleFactor is |(dx, dy)| / ScaleDiv, raised to 1 below 1 and forced to 5
// above 4. Values in [1, 4] pass through.
func ScaleFactor(dx, dy int) float64 {
	f := math.Hypot(float64(dx), float64(dy)) / ScaleDiv
	switch {
	case f < 1:
		return 1
	case f > 4:
		return 5
	default:
		return f
	}
}
