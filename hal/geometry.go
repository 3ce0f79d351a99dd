package hal

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Viewport maps engine coordinates (origin at centre, +Y up) onto a pixel
// grid with the origin at the top-left corner.
type Viewport struct {
	Width  int
	Height int
}

// ToScreen converts an engine position to viewport pixels.
func (v Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return float64(v.Width)/2 + x, float64(v.Height)/2 - y
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// depthOrder copies sprites into dst sorted by ascending depth, keeping the
// scene's order for equal depths.
func depthOrder(dst, sprites []Sprite) []Sprite {
	dst = append(dst[:0], sprites...)
	slices.SortStableFunc(dst, func(a, b Sprite) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return dst
}
