// Package trail folds raw pointer motion into a decaying ring of cumulative
// sums and derives the per-dot visual state of the mouse trail from it.
package trail

const (
	// Len is the number of ring slots, one core and one glow dot each.
	Len = 120

	// DeltaDiv scales stored sums down to screen units.
	DeltaDiv = 4

	// BoundX and BoundY are the exclusive envelopes for scaled sums.
	BoundX = 170
	BoundY = 80

	// IdleLimit is the number of empty ticks tolerated before the ring
	// collapses back to the origin.
	IdleLimit = 50
)

// Vec is a cumulative (x, y) sum in raw motion units.
type Vec struct {
	X, Y int
}

// Buffer is the ring of cumulative sums. The zero value is ready to use.
//
// Head holds the newest sum; Sums[(Head+1)%Len] holds the sum it was derived
// from. Head moves backward on every fold.
type Buffer struct {
	Sums [Len]Vec
	Head int
	Idle int
}

// Fold applies one motion sample.
func (b *Buffer) Fold(dx, dy int) {
	head := b.Head
	newHead := (head + Len - 1) % Len

	if newHead == Len-1 {
		// Wrapping from slot 0 skips the envelope test.
		b.Sums[newHead] = Vec{X: b.Sums[0].X + dx, Y: b.Sums[0].Y + dy}
	} else {
		prev := b.Sums[head]
		b.Sums[newHead] = Vec{
			X: clip(prev.X, dx, BoundX),
			Y: clip(prev.Y, dy, BoundY),
		}
	}
	b.Head = newHead
	b.Idle = 0
}

// clip adds d to the running sum when the scaled result stays strictly inside
// (-bound, bound). Otherwise the sum flips sign and steps one unit inward.
func clip(sum, d, bound int) int {
	trial := (sum + d) / DeltaDiv
	if trial > -bound && trial < bound {
		return sum + d
	}
	return -(sum - 1)
}

// EndTick closes a tick in which folded samples were applied. A tick with no
// samples counts toward the idle limit; exceeding it resets the ring. It
// reports whether a reset happened.
func (b *Buffer) EndTick(folded int) bool {
	if folded > 0 {
		return false
	}
	b.Idle++
	if b.Idle > IdleLimit {
		b.Reset()
		return true
	}
	return false
}

// Reset zeroes every sum and moves the head back to slot 0.
func (b *Buffer) Reset() {
	*b = Buffer{}
}

// Newest returns the most recently folded sum.
func (b *Buffer) Newest() Vec {
	return b.Sums[b.Head]
}
