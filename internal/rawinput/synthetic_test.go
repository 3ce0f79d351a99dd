package rawinput

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSyntheticNeedsMice(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := NewSynthetic(clk.now)

	_, ok, err := s.Next()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Register(Mice))
	ev, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Event{Kind: EventMouseMove, DX: 12, DY: 0}, ev)
}

func TestSyntheticRateLimited(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := NewSynthetic(clk.now)
	require.NoError(t, s.Register(Mice))

	_, ok, _ := s.Next()
	require.True(t, ok)
	_, ok, _ = s.Next()
	assert.False(t, ok, "Next() before the period elapsed")

	clk.advance(syntheticPeriod)
	ev, ok, _ := s.Next()
	require.True(t, ok)
	assert.Equal(t, EventMouseMove, ev.Kind)
	assert.Equal(t, int32(12), ev.DX)
	assert.Equal(t, int32(1), ev.DY)
}

func TestSyntheticKeyEvents(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := NewSynthetic(clk.now)
	require.NoError(t, s.Register(Mice))
	require.NoError(t, s.Register(Keyboards))

	keys := 0
	for i := 0; i < 2*syntheticKeyEvery; i++ {
		ev, ok, err := s.Next()
		require.NoError(t, err)
		require.True(t, ok)
		if ev.Kind == EventKey {
			keys++
		}
		clk.advance(syntheticPeriod)
	}
	assert.Equal(t, 2, keys)
}

func TestSyntheticClose(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := NewSynthetic(clk.now)
	require.NoError(t, s.Register(Mice))
	require.NoError(t, s.Close())

	_, ok, err := s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	src, err := Open("synthetic")
	require.NoError(t, err)
	defer src.Close()

	_, err = Open("no-such-backend")
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Contains(t, Backends(), "synthetic")
}
