//go:build !cgo

package rawinput

import "errors"

func init() {
	RegisterBackend("hook", func() (Source, error) {
		return nil, errors.New("hook backend requires cgo")
	})
}
