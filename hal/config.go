package hal

import "time"

const (
	defaultWidth  = 1900
	defaultHeight = 1080
	defaultHz     = 60
)

// WindowConfig controls the desktop overlay window.
type WindowConfig struct {
	Title   string
	Width   int
	Height  int
	X, Y    int
	Vsync   bool
	Console bool // show the log console at startup (F1 toggles)
	TPS     int
}

func (c *WindowConfig) normalize() {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = defaultHz
	}
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after N ticks (0 = run until ctx is done)
}

// TerminalConfig controls the tcell preview runner. Width and Height are the
// engine extents mapped onto the terminal grid.
type TerminalConfig struct {
	Hz     int
	Ticks  uint64
	Width  int
	Height int
	Title  string
}

func tickPeriod(hz int) time.Duration {
	if hz <= 0 {
		hz = defaultHz
	}
	return time.Second / time.Duration(hz)
}
