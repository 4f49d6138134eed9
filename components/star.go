package components

import (
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type StarData struct {
	ID       uuid.UUID
	Color    cfg.Color
	Velocity float64        // Horizontal units per second while shooting
	Owner    *donburi.Entry // Player the star belongs to
}

var Star = donburi.NewComponentType[StarData]()

// StarVisual is the visual of a star of the given color.
func StarVisual(c cfg.Color) VisualID {
	return VisualID("star-" + c.String())
}

// FollowPosition is where a following star sits: beside the owner and
// snapped to the owner's tile row.
func FollowPosition(owner *ActorData, tileSize int) (x, y float64) {
	row := TileIndex(owner.Position.Y, tileSize)
	x = owner.Position.X + cfg.Star.OffsetX
	y = float64(row*tileSize) + cfg.Star.OffsetY
	return x, y
}
