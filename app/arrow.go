package app

import (
	"fmt"
	"image/color"

	"mousetrail/hal"
	"mousetrail/internal/arrow"
)

// Arrow sprite position in engine coordinates.
const (
	arrowX = 600
	arrowY = -380
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Arrow is the single-sprite scene that points along the latest cursor
// displacement.
type Arrow struct {
	log    hal.Logger
	ptr    hal.Pointer
	toggle *Toggle

	state    arrow.State
	sprite   [1]hal.Sprite
	failing  bool
	failures uint64
}

func NewArrow(h hal.HAL) *Arrow {
	a := &Arrow{
		log:    h.Logger(),
		ptr:    h.Pointer(),
		toggle: NewToggle(h),
	}
	a.apply(arrow.Pose{
		Rotation: arrow.InitialRotation,
		ScaleX:   arrow.InitialScaleX,
		ScaleY:   arrow.InitialScaleY,
	})
	return a
}

func (a *Arrow) Step() error {
	return guard(a.log, "arrow", a.step)
}

func (a *Arrow) step() error {
	a.toggle.Poll()

	x, y, err := a.ptr.Position()
	if err != nil {
		a.failures++
		if !a.failing {
			a.failing = true
			hal.Logf(a.log, "arrow: pointer position: %v", err)
		}
		return nil
	}
	if a.failing {
		a.failing = false
		hal.Logf(a.log, "arrow: pointer position recovered after %d failed ticks", a.failures)
		a.failures = 0
	}

	a.state.Observe(x, y)
	a.apply(a.state.Pose())
	return nil
}

func (a *Arrow) apply(p arrow.Pose) {
	a.sprite[0] = hal.Sprite{
		Texture:  hal.TextureArrow,
		X:        arrowX,
		Y:        arrowY,
		Rotation: p.Rotation,
		ScaleX:   p.ScaleX,
		ScaleY:   p.ScaleY,
		Color:    white,
	}
}

func (a *Arrow) Sprites() []hal.Sprite { return a.sprite[:] }

// State exposes the tracked cursor delta for inspection.
func (a *Arrow) State() arrow.State { return a.state }

func (a *Arrow) Status() string {
	return fmt.Sprintf("delta %d,%d  scale %.2f", a.state.DX, a.state.DY, arrow.ScaleFactor(a.state.DX, a.state.DY))
}
