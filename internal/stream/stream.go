// Package stream is the bounded single-producer/single-consumer channel that
// carries raw motion samples from the sampler goroutine to the tick loop.
package stream

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Capacity is the number of samples the stream buffers before Send blocks.
const Capacity = 10

// ErrClosed is returned by Send after the producer closed the stream.
var ErrClosed = errors.New("stream: closed")

// Sample is one raw relative pointer motion (dx, dy).
type Sample struct {
	DX, DY int
}

// Stream is a FIFO of Samples with backpressure on the producer side and a
// non-blocking drain on the consumer side.
//
// Send, TrySend and Close belong to the producer; Drain belongs to the
// consumer.
type Stream struct {
	ch     chan Sample
	once   sync.Once
	closed atomic.Bool
}

// New returns an empty stream with Capacity slots.
func New() *Stream {
	return &Stream{ch: make(chan Sample, Capacity)}
}

// Send enqueues s, blocking while the stream is full. It never drops a
// sample; it gives up only when ctx is done.
func (s *Stream) Send(ctx context.Context, v Sample) error {
	if s.closed.Load() {
		return ErrClosed
	}
	select {
	case s.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend enqueues v if a slot is free.
func (s *Stream) TrySend(v Sample) bool {
	if s.closed.Load() {
		return false
	}
	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

// Close marks the end of the stream. Queued samples stay drainable.
func (s *Stream) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
	})
}

// Drain appends the samples queued when it is called to dst in arrival order
// and returns it. Samples a blocked producer pushes while Drain runs wait for
// the next call, so Drain never blocks and never outruns the producer. open is
// false once the producer closed the stream and nothing is left to drain.
func (s *Stream) Drain(dst []Sample) (out []Sample, open bool) {
	closed := s.closed.Load()
	n := len(s.ch)
	for i := 0; i < n; i++ {
		v, ok := <-s.ch
		if !ok {
			return dst, false
		}
		dst = append(dst, v)
	}
	// After Close nothing more can arrive, so an empty queue is the end.
	if closed && len(s.ch) == 0 {
		return dst, false
	}
	return dst, true
}

// Len reports the number of queued samples.
func (s *Stream) Len() int { return len(s.ch) }
