//go:build cgo

package rawinput

import (
	"sync"
	"sync/atomic"

	hook "github.com/robotn/gohook"
)

const hookQueue = 256

func init() {
	RegisterBackend("hook", func() (Source, error) {
		return &hookSource{events: make(chan Event, hookQueue)}, nil
	})
}

// hookSource turns the global input hook's absolute cursor positions into
// relative motion.
type hookSource struct {
	mu      sync.Mutex
	started bool
	keys    bool
	events  chan Event
	dropped atomic.Uint64
}

func (s *hookSource) Register(d DeviceType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch d {
	case Mice:
		if !s.started {
			s.started = true
			go s.run(hook.Start())
		}
	case Keyboards:
		s.keys = true
	default:
		return ErrNoDevices
	}
	return nil
}

func (s *hookSource) run(in chan hook.Event) {
	var lastX, lastY int16
	have := false
	for e := range in {
		var ev Event
		switch e.Kind {
		case hook.MouseMove, hook.MouseDrag:
			if !have {
				lastX, lastY, have = e.X, e.Y, true
				continue
			}
			dx, dy := int32(e.X-lastX), int32(e.Y-lastY)
			lastX, lastY = e.X, e.Y
			if dx == 0 && dy == 0 {
				continue
			}
			ev = Event{Kind: EventMouseMove, DX: dx, DY: dy}
		case hook.KeyDown, hook.KeyUp:
			s.mu.Lock()
			keys := s.keys
			s.mu.Unlock()
			if !keys {
				continue
			}
			ev = Event{Kind: EventKey, Device: 1}
		default:
			continue
		}
		// Drop on overflow; the hook thread must not stall.
		select {
		case s.events <- ev:
		default:
			s.dropped.Add(1)
		}
	}
}

func (s *hookSource) Dropped() uint64 { return s.dropped.Load() }

func (s *hookSource) Next() (Event, bool, error) {
	select {
	case ev := <-s.events:
		return ev, true, nil
	default:
		return Event{}, false, nil
	}
}

func (s *hookSource) Close() error {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()
	if started {
		hook.End()
	}
	return nil
}
