//go:build !cgo

package hal

import "fmt"

type hostPointer struct{}

func newHostPointer() Pointer { return hostPointer{} }

func (hostPointer) Position() (x, y int, err error) {
	return 0, 0, fmt.Errorf("pointer position requires cgo: %w", ErrNotImplemented)
}
