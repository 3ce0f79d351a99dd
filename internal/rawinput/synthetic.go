package rawinput

import (
	"math"
	"time"
)

const (
	syntheticPeriod    = 8 * time.Millisecond
	syntheticMagnitude = 12
	syntheticStep      = 0.05
	syntheticKeyEvery  = 250
)

func init() {
	RegisterBackend("synthetic", func() (Source, error) {
		return NewSynthetic(time.Now), nil
	})
}

// Synthetic emits motion tracing a circle at a fixed rate. It stands in for a
// real mouse in demos and tests.
type Synthetic struct {
	now    func() time.Time
	period time.Duration

	registered [Joysticks + 1]bool
	next       time.Time
	angle      float64
	count      int
	closed     bool
}

// NewSynthetic returns a Synthetic driven by the given clock.
func NewSynthetic(now func() time.Time) *Synthetic {
	return &Synthetic{now: now, period: syntheticPeriod}
}

func (s *Synthetic) Register(d DeviceType) error {
	if int(d) >= len(s.registered) {
		return ErrNoDevices
	}
	s.registered[d] = true
	return nil
}

func (s *Synthetic) Next() (Event, bool, error) {
	if s.closed || !s.registered[Mice] {
		return Event{}, false, nil
	}
	now := s.now()
	if now.Before(s.next) {
		return Event{}, false, nil
	}
	s.next = now.Add(s.period)
	s.count++

	if s.registered[Keyboards] && s.count%syntheticKeyEvery == 0 {
		return Event{Kind: EventKey, Device: 1}, true, nil
	}

	dx := math.Round(syntheticMagnitude * math.Cos(s.angle))
	dy := math.Round(syntheticMagnitude * math.Sin(s.angle))
	s.angle = math.Mod(s.angle+syntheticStep, 2*math.Pi)
	return Event{Kind: EventMouseMove, DX: int32(dx), DY: int32(dy)}, true, nil
}

func (s *Synthetic) Close() error {
	s.closed = true
	return nil
}
