// Package rawinput reads relative pointer motion from the platform's raw
// input devices.
//
// A Source is opened by backend name, has device classes registered on it
// and is then polled with Next from a single goroutine.
package rawinput

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DeviceType is a class of input devices a Source can listen to.
type DeviceType uint8

const (
	Mice DeviceType = iota
	Keyboards
	Joysticks
)

func (d DeviceType) String() string {
	switch d {
	case Mice:
		return "mice"
	case Keyboards:
		return "keyboards"
	case Joysticks:
		return "joysticks"
	default:
		return fmt.Sprintf("DeviceType(%d)", uint8(d))
	}
}

// EventKind tags an Event.
type EventKind uint8

const (
	EventOther EventKind = iota
	EventMouseMove
	EventKey
)

// Event is one device event. DX and DY are set for EventMouseMove only.
type Event struct {
	Kind   EventKind
	Device int
	DX, DY int32
}

// Source is a pollable raw input device manager.
type Source interface {
	// Register starts listening to a class of devices.
	Register(DeviceType) error
	// Next returns the next pending event. ok is false when nothing is
	// pending; Next never blocks.
	Next() (ev Event, ok bool, err error)
	Close() error
}

// Dropper is implemented by sources that lose events when their consumer
// falls behind. Dropped is the running total.
type Dropper interface {
	Dropped() uint64
}

var (
	ErrUnknownBackend = errors.New("rawinput: unknown backend")
	ErrNoDevices      = errors.New("rawinput: no devices")
)

// Opener constructs an unregistered Source.
type Opener func() (Source, error)

var (
	backendsMu sync.Mutex
	backends   = map[string]Opener{}
)

// RegisterBackend makes a backend available to Open under name.
func RegisterBackend(name string, open Opener) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = open
}

// Backends lists the registered backend names.
func Backends() []string {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open creates the named backend and registers mice, keyboards and
// joysticks on it. Only a missing pointer device is fatal.
func Open(name string) (Source, error) {
	if name == "" {
		name = DefaultBackend
	}
	backendsMu.Lock()
	open, ok := backends[name]
	backendsMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownBackend, name, Backends())
	}

	src, err := open()
	if err != nil {
		return nil, fmt.Errorf("rawinput: open %s: %w", name, err)
	}
	if err := src.Register(Mice); err != nil {
		src.Close()
		return nil, fmt.Errorf("rawinput: %s: register %v: %w", name, Mice, err)
	}
	for _, d := range []DeviceType{Keyboards, Joysticks} {
		if err := src.Register(d); err != nil && !errors.Is(err, ErrNoDevices) {
			src.Close()
			return nil, fmt.Errorf("rawinput: %s: register %v: %w", name, d, err)
		}
	}
	return src, nil
}
