package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
)

// enterState switches the entity to next and resets its timer. Entering the
// current state again is allowed; it only refreshes the visual.
func enterState(r components.Renderer, actor *components.ActorData, state *components.StateData, next cfg.StateID) {
	if next != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.StateTimer = 0
	}
	state.CurrentState = next

	if visual, ok := cfg.StateToVisual[next]; ok && actor.Handle != 0 {
		r.SetVisual(actor.Handle, components.VisualID(visual), actor.Facing)
	}
}

// face turns the actor and reports whether its facing changed.
func face(actor *components.ActorData, f components.Facing) bool {
	if actor.Facing == f {
		return false
	}
	actor.Facing = f
	return true
}
