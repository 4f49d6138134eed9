package factory

import (
	"github.com/colorwandcastle/colorwand/archetypes"
	"github.com/colorwandcastle/colorwand/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addTileObject mirrors a tile into the debug space. Resolv is y-down, so the
// tile's row is flipped against the room height.
func addTileObject(w donburi.World, room *components.RoomData, t components.Tile, tag string) *resolv.Object {
	space := components.SpaceOf(w)
	if space == nil {
		return nil
	}
	size := float64(room.TileSize)
	x, y := components.TileOrigin(t, room.TileSize)
	obj := resolv.NewObject(x, room.Height()-y-size, size, size, tag)
	obj.Data = t
	space.Add(obj)
	return obj
}

// addActorObject mirrors an actor's hit box into the debug space.
func addActorObject(w donburi.World, entry *donburi.Entry, actor *components.ActorData, tag string) {
	obj := resolv.NewObject(0, 0, float64(actor.Bounds.Width()), float64(actor.Bounds.Height()), tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if space := components.SpaceOf(w); space != nil {
		space.Add(obj)
	}
}
