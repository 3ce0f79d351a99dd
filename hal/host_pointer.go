//go:build cgo

package hal

import "github.com/go-vgo/robotgo"

type hostPointer struct{}

func newHostPointer() Pointer { return hostPointer{} }

func (hostPointer) Position() (x, y int, err error) {
	x, y = robotgo.Location()
	return x, y, nil
}
