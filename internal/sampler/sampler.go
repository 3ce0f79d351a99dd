// Package sampler runs the background loop that polls a raw input source and
// forwards pointer motion into a stream.
package sampler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"mousetrail/hal"
	"mousetrail/internal/rawinput"
	"mousetrail/internal/stream"
)

// DefaultIdleSleep is how long the loop waits when the source has nothing
// pending.
const DefaultIdleSleep = 10 * time.Millisecond

// Stats counts what the loop has seen so far. Safe to read from any goroutine.
type Stats struct {
	Polls   atomic.Uint64
	Moves   atomic.Uint64
	Ignored atomic.Uint64
	Idle    atomic.Uint64
	// Dropped mirrors the source's own loss counter when it keeps one.
	Dropped atomic.Uint64
}

// Sampler owns the producer side of a stream.
type Sampler struct {
	src   rawinput.Source
	out   *stream.Stream
	sleep time.Duration
	log   hal.Logger

	Stats Stats
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithIdleSleep overrides DefaultIdleSleep.
func WithIdleSleep(d time.Duration) Option {
	return func(s *Sampler) { s.sleep = d }
}

// WithLogger reports loop start and stop to l.
func WithLogger(l hal.Logger) Option {
	return func(s *Sampler) { s.log = l }
}

// New returns a Sampler reading src and writing out.
func New(src rawinput.Source, out *stream.Stream, opts ...Option) *Sampler {
	s := &Sampler{src: src, out: out, sleep: DefaultIdleSleep}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run polls until ctx is done or the source fails. The stream is always
// closed on return so the consumer observes the end of input. A canceled
// context is a normal stop and returns nil; a source failure is returned to
// the caller to report.
func (s *Sampler) Run(ctx context.Context) error {
	defer s.out.Close()
	hal.Logf(s.log, "sampler: started")

	err := s.loop(ctx)
	s.checkDrops()
	if err != nil {
		return err
	}
	hal.Logf(s.log, "sampler: stopped after %d samples", s.Stats.Moves.Load())
	return nil
}

func (s *Sampler) loop(ctx context.Context) error {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		s.Stats.Polls.Add(1)
		ev, ok, err := s.src.Next()
		if err != nil {
			return fmt.Errorf("sampler: poll: %w", err)
		}
		if !ok {
			s.Stats.Idle.Add(1)
			s.checkDrops()
			if timer == nil {
				timer = time.NewTimer(s.sleep)
			} else {
				timer.Reset(s.sleep)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-timer.C:
			}
			continue
		}
		if ev.Kind != rawinput.EventMouseMove {
			s.Stats.Ignored.Add(1)
			continue
		}
		if err := s.out.Send(ctx, stream.Sample{DX: int(ev.DX), DY: int(ev.DY)}); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("sampler: send: %w", err)
		}
		s.Stats.Moves.Add(1)
	}
}

// checkDrops copies the source's loss counter into Stats. Every lost delta
// shifts the rest of the trail, so the first loss is logged.
func (s *Sampler) checkDrops() {
	d, ok := s.src.(rawinput.Dropper)
	if !ok {
		return
	}
	n := d.Dropped()
	prev := s.Stats.Dropped.Load()
	if n == prev {
		return
	}
	if prev == 0 {
		hal.Logf(s.log, "sampler: source dropped %d events, trail offset from here on", n)
	}
	s.Stats.Dropped.Store(n)
}
