package systems

import (
	"github.com/colorwandcastle/colorwand/components"
)

// CornerTiles returns the tiles under an actor's corners in the order
// top-left, top-right, bottom-left, bottom-right. Edges are inclusive, so an
// edge lying exactly on a tile boundary falls in the tile above or to the
// right of it.
func CornerTiles(a *components.ActorData, tileSize int) [4]components.Tile {
	top, bottom := a.Top(), a.Bottom()
	left, right := a.LeftEdge(), a.RightEdge()
	return [4]components.Tile{
		components.TileOf(left, top, tileSize),
		components.TileOf(right, top, tileSize),
		components.TileOf(left, bottom, tileSize),
		components.TileOf(right, bottom, tileSize),
	}
}

// BlockedBy reports whether any corner of the actor lies in a tile present in
// tiles. It only reads the map.
func BlockedBy[T any](a *components.ActorData, tiles map[components.Tile]T, tileSize int) bool {
	for _, t := range CornerTiles(a, tileSize) {
		if _, ok := tiles[t]; ok {
			return true
		}
	}
	return false
}

// solid is the player's view of the room: walls and blocks both stop it.
func solid(a *components.ActorData, room *components.RoomData) bool {
	return BlockedBy(a, room.Walls, room.TileSize) || BlockedBy(a, room.Blocks, room.TileSize)
}
