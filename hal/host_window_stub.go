//go:build !cgo

package hal

import (
	"context"
	"errors"
)

func RunWindow(_ context.Context, _ HAL, _ WindowConfig, _ func(HAL) Scene) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
