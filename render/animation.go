package render

import (
	cfg "github.com/colorwandcastle/colorwand/config"
)

// Animation steps through a range of frame indices at a fixed tick rate.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
}

func (a *Animation) Update() {
	if a.SpeedInTps <= 0 {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
}

func NewAnimation(def cfg.AnimationDef) *Animation {
	return &Animation{
		First:        def.First,
		Last:         def.Last,
		Step:         def.Step,
		SpeedInTps:   def.Speed,
		frameCounter: def.Speed,
		frame:        def.First,
	}
}
