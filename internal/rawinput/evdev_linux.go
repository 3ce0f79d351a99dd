//go:build linux

package rawinput

import (
	"errors"
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

// struct input_event: a timeval followed by type, code and value.
var evdevRecordSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

var evdevGlobs = map[DeviceType][]string{
	Mice:      {"/dev/input/by-id/*-event-mouse", "/dev/input/by-path/*-event-mouse"},
	Keyboards: {"/dev/input/by-id/*-event-kbd", "/dev/input/by-path/*-event-kbd"},
	Joysticks: {"/dev/input/by-id/*-event-joystick", "/dev/input/by-path/*-event-joystick"},
}

func init() {
	RegisterBackend("evdev", func() (Source, error) {
		return &evdev{}, nil
	})
}

type evdevDevice struct {
	path string
	fd   int
	dec  *evdecoder
}

// evdev reads input_event records from /dev/input nodes opened non-blocking.
type evdev struct {
	devices []*evdevDevice
	seen    map[string]bool
	pending []Event
	buf     []byte
	next    int
}

func (s *evdev) Register(d DeviceType) error {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	var paths []string
	for _, g := range evdevGlobs[d] {
		m, err := filepath.Glob(g)
		if err != nil {
			return err
		}
		paths = append(paths, m...)
	}

	opened := 0
	var firstErr error
	for _, p := range paths {
		target, err := filepath.EvalSymlinks(p)
		if err != nil {
			target = p
		}
		if s.seen[target] {
			continue
		}
		fd, err := unix.Open(target, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("open %s: %w", target, err)
			}
			continue
		}
		s.seen[target] = true
		id := len(s.devices)
		s.devices = append(s.devices, &evdevDevice{
			path: target,
			fd:   fd,
			dec:  newEvdecoder(evdevRecordSize, id, d),
		})
		opened++
	}
	if opened == 0 {
		if firstErr != nil {
			return fmt.Errorf("%w: %v", ErrNoDevices, firstErr)
		}
		return ErrNoDevices
	}
	return nil
}

func (s *evdev) Next() (Event, bool, error) {
	if len(s.pending) == 0 {
		if err := s.poll(); err != nil {
			return Event{}, false, err
		}
	}
	if len(s.pending) == 0 {
		return Event{}, false, nil
	}
	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, true, nil
}

// poll reads whatever each device has buffered, starting after the device
// that produced events last time.
func (s *evdev) poll() error {
	if len(s.devices) == 0 {
		return nil
	}
	if s.buf == nil {
		s.buf = make([]byte, 64*evdevRecordSize)
	}
	s.pending = s.pending[:0]
	for i := range s.devices {
		dev := s.devices[(s.next+i)%len(s.devices)]
		n, err := unix.Read(dev.fd, s.buf)
		switch {
		case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return fmt.Errorf("rawinput: read %s: %w", dev.path, err)
		case n <= 0:
			continue
		}
		s.pending = dev.dec.feed(s.buf[:n], s.pending)
	}
	s.next = (s.next + 1) % len(s.devices)
	return nil
}

func (s *evdev) Close() error {
	var errs []error
	for _, dev := range s.devices {
		if err := unix.Close(dev.fd); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", dev.path, err))
		}
	}
	s.devices = nil
	return errors.Join(errs...)
}
