package cli

import "mousetrail/hal"

type countScene struct{ steps int }

func (s *countScene) new(hal.HAL) hal.Scene { return s }
func (s *countScene) Sprites() []hal.Sprite { return nil }

func (s *countScene) Step() error {
	s.steps++
	return nil
}
