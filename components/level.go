package components

import (
	"math/rand"

	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Config cfg.LevelConfig
	Rand   *rand.Rand // Block and star colors

	// Playfield is the clamp rectangle used by the rectangle policy, in
	// world units: Left/Right are x limits, Down/Up are y limits.
	Playfield struct {
		Left, Down, Right, Up float64
	}
}

// FloorBound is the y value a standing actor's bottom edge rests on.
func (l *LevelData) FloorBound() float64 {
	return l.Playfield.Down
}

var Level = donburi.NewComponentType[LevelData]()
