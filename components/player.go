package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed float64 // Units per second

	// FireLatched is set when a press has fired and cleared only on release.
	FireLatched bool

	Star *donburi.Entry // Attached star, never nil after spawn
}

var Player = donburi.NewComponentType[PlayerData]()
