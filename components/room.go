package components

import (
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// WallData is an impassable tile of the room border.
type WallData struct {
	Handle Handle
	Object *resolv.Object // Debug mirror, nil without a space
}

// BlockData is a colored tile. Blocks stop the player and bounce stars.
type BlockData struct {
	Color  cfg.Color
	Handle Handle
	Object *resolv.Object
}

// RoomData is the sparse tile grid of the current level. A tile is never in
// both Walls and Blocks, and absence means passable.
type RoomData struct {
	Walls  map[Tile]*WallData
	Blocks map[Tile]*BlockData

	Cols, Rows int
	TileSize   int

	Columns int // Block columns the room was generated with
	Colors  int // Palette prefix the block colors were drawn from

	// FrontCol is the leftmost block column; FrontColors counts its blocks by color.
	FrontCol    int
	FrontColors map[cfg.Color]int

	// Pending holds blocks to remove at the end of the frame.
	Pending []Tile
}

// Width returns the room width in world units.
func (r *RoomData) Width() float64 { return float64(r.Cols * r.TileSize) }

// Height returns the room height in world units.
func (r *RoomData) Height() float64 { return float64(r.Rows * r.TileSize) }

// IncColor records one more front block of color c.
func (r *RoomData) IncColor(c cfg.Color) {
	r.FrontColors[c]++
}

// DecColor records one fewer front block of color c, dropping empty entries.
func (r *RoomData) DecColor(c cfg.Color) {
	n, ok := r.FrontColors[c]
	if !ok {
		return
	}
	if n <= 1 {
		delete(r.FrontColors, c)
		return
	}
	r.FrontColors[c] = n - 1
}

// BlockCounts returns how many blocks of each color remain in the room.
func (r *RoomData) BlockCounts() [cfg.ColorCount]int {
	var counts [cfg.ColorCount]int
	for _, b := range r.Blocks {
		if b.Color.Validate() == nil {
			counts[b.Color]++
		}
	}
	return counts
}

var Room = donburi.NewComponentType[RoomData]()
