package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig configures the desktop HAL shared by all runners.
type HostConfig struct {
	// Log receives every log line. Nil means stdout.
	Log io.Writer
}

type hostHAL struct {
	logger *hostLogger
	kbd    *hostKeyboard
	win    *hostWindow
	ptr    Pointer
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	return &hostHAL{
		logger: newHostLogger(w),
		kbd:    newHostKeyboard(),
		win:    &hostWindow{hitTest: true},
		ptr:    newHostPointer(),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }
func (h *hostHAL) Window() Window     { return h.win }
func (h *hostHAL) Pointer() Pointer   { return h.ptr }

func asHost(h HAL) (*hostHAL, error) {
	hh, ok := h.(*hostHAL)
	if !ok {
		return nil, fmt.Errorf("hal: runner needs a host HAL, got %T", h)
	}
	return hh, nil
}

const logSinkLines = 256

type hostLogger struct {
	mu   sync.Mutex
	w    io.Writer
	sink chan string
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{w: w, sink: make(chan string, logSinkLines)}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	fmt.Fprintln(l.w, s)
	l.mu.Unlock()
	l.forward(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
	l.mu.Unlock()
	l.forward(string(b))
}

// forward copies a line to the on-screen console. Lines are dropped while
// nothing drains the sink (headless runs).
func (l *hostLogger) forward(s string) {
	select {
	case l.sink <- s:
	default:
	}
}

// drain moves pending console lines into fn on the caller's goroutine.
func (l *hostLogger) drain(fn func(string)) {
	for {
		select {
		case s := <-l.sink:
			fn(s)
		default:
			return
		}
	}
}

// hostWindow holds the hit-test flag. apply pushes changes to the real
// window once a window backend is running.
type hostWindow struct {
	mu      sync.Mutex
	hitTest bool
	apply   func(hitTest bool)
}

func (w *hostWindow) HitTest() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hitTest
}

func (w *hostWindow) SetHitTest(enabled bool) {
	w.mu.Lock()
	w.hitTest = enabled
	apply := w.apply
	w.mu.Unlock()
	if apply != nil {
		apply(enabled)
	}
}

func (w *hostWindow) bind(apply func(hitTest bool)) {
	w.mu.Lock()
	w.apply = apply
	enabled := w.hitTest
	w.mu.Unlock()
	if apply != nil {
		apply(enabled)
	}
}
