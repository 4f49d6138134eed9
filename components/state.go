package components

import (
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // Ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
