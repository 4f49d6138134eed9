package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	"github.com/yohamta/donburi"
)

// PollInput samples every player's input source once for the frame.
// Must run BEFORE UpdatePlayers in the system order.
func PollInput(w donburi.World) {
	components.Input.Each(w, func(e *donburi.Entry) {
		components.Input.Get(e).Poll()
	})
}

// horizontal returns the facing asked for by left/right, or false when
// neither or both are held.
func horizontal(in *components.InputData) (components.Facing, bool) {
	left, right := in.Held[components.ControlLeft], in.Held[components.ControlRight]
	switch {
	case left && !right:
		return components.FacingLeft, true
	case right && !left:
		return components.FacingRight, true
	}
	return components.FacingRight, false
}
