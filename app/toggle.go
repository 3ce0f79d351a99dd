package app

import "mousetrail/hal"

// Toggle flips the window's input hit-test flag on every KeyP press.
type Toggle struct {
	win  hal.Window
	keys <-chan hal.KeyEvent

	Flips int
}

func NewToggle(h hal.HAL) *Toggle {
	t := &Toggle{win: h.Window()}
	if kbd := h.Keyboard(); kbd != nil {
		t.keys = kbd.Events()
	}
	return t
}

// Flip inverts hit testing once.
func (t *Toggle) Flip() {
	if t.win == nil {
		return
	}
	t.win.SetHitTest(!t.win.HitTest())
	t.Flips++
}

// Poll consumes the key edges queued since the last tick. Releases and
// other keys are ignored.
func (t *Toggle) Poll() {
	if t.keys == nil {
		return
	}
	for {
		select {
		case ev := <-t.keys:
			if ev.Code == hal.KeyP && ev.Press {
				t.Flip()
			}
		default:
			return
		}
	}
}
