package components

import "math"

// Tile is a (row, col) cell of the room grid. Row 0 is the bottom row.
type Tile struct {
	Row, Col int
}

// TileOf converts a world position into the tile containing it.
func TileOf(x, y float64, tileSize int) Tile {
	return Tile{
		Row: TileIndex(y, tileSize),
		Col: TileIndex(x, tileSize),
	}
}

// TileIndex floor-divides a single coordinate by the tile size.
func TileIndex(v float64, tileSize int) int {
	return int(math.Floor(v / float64(tileSize)))
}

// TileOrigin returns the world position of a tile's lower-left corner.
func TileOrigin(t Tile, tileSize int) (x, y float64) {
	return float64(t.Col * tileSize), float64(t.Row * tileSize)
}
