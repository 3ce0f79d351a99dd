package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"mousetrail/hal"
)

// PanicError is returned by a scene step that panicked.
type PanicError struct {
	Scene string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s panic: %v", e.Scene, e.Value)
}

// guard runs step and turns a panic into a *PanicError. The panic and its
// stack are written to l line by line so they reach the on-screen console.
func guard(l hal.Logger, scene string, step func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr := &PanicError{Scene: scene, Value: r, Stack: debug.Stack()}
		hal.Logf(l, "%s", perr.Error())
		for _, line := range strings.Split(string(perr.Stack), "\n") {
			if line == "" {
				continue
			}
			hal.Logf(l, "%s", line)
		}
		err = perr
	}()
	return step()
}
