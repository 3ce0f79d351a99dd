package hal

import (
	"context"
	"time"
)

// RunHeadless steps the scene on a ticker without opening a window. It
// returns ctx.Err() when cancelled, nil after cfg.Ticks ticks, or the first
// error returned by Scene.Step.
func RunHeadless(ctx context.Context, h HAL, cfg HeadlessConfig, newScene func(HAL) Scene) error {
	hh, err := asHost(h)
	if err != nil {
		return err
	}
	scene := newScene(hh)

	t := time.NewTicker(tickPeriod(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if scene != nil {
				if err := scene.Step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
