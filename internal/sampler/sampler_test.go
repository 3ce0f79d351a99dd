package sampler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mousetrail/internal/rawinput"
	"mousetrail/internal/stream"
)

type fakeSource struct {
	mu     sync.Mutex
	events []rawinput.Event
	err    error
}

func (f *fakeSource) Register(rawinput.DeviceType) error { return nil }

func (f *fakeSource) Close() error { return nil }

func (f *fakeSource) Next() (rawinput.Event, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return rawinput.Event{}, false, f.err
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true, nil
}

type lossySource struct {
	fakeSource
	dropped atomic.Uint64
}

func (f *lossySource) Dropped() uint64 { return f.dropped.Load() }

type lines struct {
	mu sync.Mutex
	l  []string
}

func (l *lines) WriteLineString(s string) {
	l.mu.Lock()
	l.l = append(l.l, s)
	l.mu.Unlock()
}

func (l *lines) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func move(dx, dy int32) rawinput.Event {
	return rawinput.Event{Kind: rawinput.EventMouseMove, DX: dx, DY: dy}
}

func drainAll(t *testing.T, s *stream.Stream) []stream.Sample {
	t.Helper()
	var got []stream.Sample
	deadline := time.After(2 * time.Second)
	for {
		var open bool
		got, open = s.Drain(got)
		if !open {
			return got
		}
		select {
		case <-deadline:
			t.Fatalf("stream still open after %d samples", len(got))
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRunForwardsMouseMovesOnly(t *testing.T) {
	src := &fakeSource{
		events: []rawinput.Event{
			move(1, 2),
			{Kind: rawinput.EventKey},
			move(-3, 4),
			{Kind: rawinput.EventOther},
			move(5, -6),
		},
		err: errors.New("device gone"),
	}
	out := stream.New()
	s := New(src, out, WithIdleSleep(time.Millisecond))

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")

	got := drainAll(t, out)
	assert.Equal(t, []stream.Sample{{DX: 1, DY: 2}, {DX: -3, DY: 4}, {DX: 5, DY: -6}}, got)
	assert.Equal(t, uint64(3), s.Stats.Moves.Load())
	assert.Equal(t, uint64(2), s.Stats.Ignored.Load())
}

func TestRunBackpressure(t *testing.T) {
	const total = 3 * stream.Capacity
	src := &fakeSource{}
	for i := 0; i < total; i++ {
		src.events = append(src.events, move(int32(i), 0))
	}
	out := stream.New()
	s := New(src, out, WithIdleSleep(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var got []stream.Sample
	deadline := time.After(2 * time.Second)
	for len(got) < total {
		assert.LessOrEqual(t, out.Len(), stream.Capacity)
		got, _ = out.Drain(got)
		select {
		case <-deadline:
			t.Fatalf("got %d samples, want %d", len(got), total)
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	require.NoError(t, <-done)

	for i, v := range got {
		assert.Equal(t, i, v.DX)
	}
	_, open := out.Drain(nil)
	assert.False(t, open)
}

func TestRunStopsOnCancel(t *testing.T) {
	log := &lines{}
	out := stream.New()
	s := New(&fakeSource{}, out, WithIdleSleep(time.Hour), WithLogger(log))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(5 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	_, open := out.Drain(nil)
	assert.False(t, open)

	log.mu.Lock()
	defer log.mu.Unlock()
	require.Len(t, log.l, 2)
	assert.Equal(t, "sampler: started", log.l[0])
}

func TestRunReportsDroppedEvents(t *testing.T) {
	log := &lines{}
	src := &lossySource{}
	src.dropped.Store(3)
	out := stream.New()
	s := New(src, out, WithIdleSleep(time.Millisecond), WithLogger(log))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return s.Stats.Dropped.Load() == 3 }, 2*time.Second, time.Millisecond)
	src.dropped.Store(5)
	require.Eventually(t, func() bool { return s.Stats.Dropped.Load() == 5 }, 2*time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	log.mu.Lock()
	defer log.mu.Unlock()
	n := 0
	for _, l := range log.l {
		if strings.Contains(l, "dropped") {
			n++
		}
	}
	assert.Equal(t, 1, n, "drop warnings in %q", log.l)
}
