package components

import (
	"github.com/yohamta/donburi"
)

// Control names a logical input the game reads each frame.
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlFire
	ControlCount // Must be last - used for array sizing
)

func (c Control) String() string {
	switch c {
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlFire:
		return "fire"
	}
	return "unknown"
}

// InputSource reports whether a control is currently held.
type InputSource interface {
	IsHeld(c Control) bool
}

// InputData is the per-player input binding plus the held state sampled once
// at the start of the frame.
type InputData struct {
	Source InputSource
	Held   [ControlCount]bool
}

// Poll samples every control from the source.
func (in *InputData) Poll() {
	for c := Control(0); c < ControlCount; c++ {
		in.Held[c] = in.Source != nil && in.Source.IsHeld(c)
	}
}

var Input = donburi.NewComponentType[InputData]()

// StaticInput is an input source backed by a set of held controls, for tests
// and scripted play.
type StaticInput map[Control]bool

func (s StaticInput) IsHeld(c Control) bool { return s[c] }

// Hold replaces the held set with cs.
func (s StaticInput) Hold(cs ...Control) {
	for c := range s {
		delete(s, c)
	}
	for _, c := range cs {
		s[c] = true
	}
}
