package factory

import (
	"fmt"

	"github.com/colorwandcastle/colorwand/archetypes"
	"github.com/colorwandcastle/colorwand/assets"
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/tags"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const (
	wallVisual = components.VisualID("bricks")
)

// BlockVisual is the visual of a block of the given color.
func BlockVisual(c cfg.Color) components.VisualID {
	return components.VisualID("block-" + c.String())
}

// CreateRoom spawns a room with walls around the border and a rectangle of
// randomly colored blocks against the right-hand wall. Block colors are drawn
// from the first room.Colors palette entries.
func CreateRoom(w donburi.World, lvl cfg.LevelConfig, levelData *components.LevelData) (*donburi.Entry, error) {
	cols, rows := lvl.Cols(), lvl.Rows()
	room := newRoomData(lvl)

	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if c == 0 || c == cols-1 || r == 0 || r == rows-1 {
				createWall(w, room, components.Tile{Row: r, Col: c})
			}
		}
	}

	eligible := cfg.PalettePrefix(lvl.Room.Colors)
	for c := cols - lvl.Room.Columns - 1; c < cols-1; c++ {
		for r := 1; r < rows-1; r++ {
			color := eligible[levelData.Rand.Intn(len(eligible))]
			if err := CreateBlock(w, room, components.Tile{Row: r, Col: c}, color); err != nil {
				discardRoom(w, room)
				return nil, err
			}
		}
	}

	return spawnRoom(w, room), nil
}

// CreateRoomFromLayout spawns a room from a loaded Tiled layout. Rows in the
// layout are top-down; the room grid is bottom-up.
func CreateRoomFromLayout(w donburi.World, lvl cfg.LevelConfig, layout *assets.RoomLayout) (*donburi.Entry, error) {
	if layout.Cols != lvl.Cols() || layout.Rows != lvl.Rows() {
		return nil, fmt.Errorf("layout %s is %dx%d tiles, level %s needs %dx%d",
			layout.Name, layout.Cols, layout.Rows, lvl.Name, lvl.Cols(), lvl.Rows())
	}
	if layout.TileSize != lvl.TileSize {
		return nil, fmt.Errorf("layout %s has %d unit tiles, level %s needs %d",
			layout.Name, layout.TileSize, lvl.Name, lvl.TileSize)
	}

	room := newRoomData(lvl)
	room.Colors = len(cfg.Palette)

	for _, t := range layout.Walls {
		createWall(w, room, components.Tile{Row: layout.Rows - 1 - t.Row, Col: t.Col})
	}
	for _, b := range layout.Blocks {
		tile := components.Tile{Row: layout.Rows - 1 - b.Row, Col: b.Col}
		if err := CreateBlock(w, room, tile, b.Color); err != nil {
			discardRoom(w, room)
			return nil, fmt.Errorf("layout %s: %w", layout.Name, err)
		}
	}

	room.FrontCol = room.Cols
	for t := range room.Blocks {
		if t.Col < room.FrontCol {
			room.FrontCol = t.Col
		}
	}
	room.Columns = room.Cols - 1 - room.FrontCol
	RebuildFrontColors(room)

	return spawnRoom(w, room), nil
}

// CreateBlock validates the color and adds a block to the room. On error the
// room is left untouched.
func CreateBlock(w donburi.World, room *components.RoomData, t components.Tile, color cfg.Color) error {
	if err := color.Validate(); err != nil {
		return fmt.Errorf("block at %v: %w", t, err)
	}
	if _, taken := room.Walls[t]; taken {
		return fmt.Errorf("block at %v: tile is a wall", t)
	}

	x, y := components.TileOrigin(t, room.TileSize)
	block := &components.BlockData{
		Color:  color,
		Handle: components.RendererOf(w).Create(BlockVisual(color), x, y, components.FacingRight),
		Object: addTileObject(w, room, t, tags.ResolvBlock),
	}
	room.Blocks[t] = block
	if t.Col == room.FrontCol {
		room.IncColor(color)
	}
	return nil
}

// RebuildFrontColors recounts the colors of the room's front block column.
func RebuildFrontColors(room *components.RoomData) {
	room.FrontColors = make(map[cfg.Color]int)
	for t, b := range room.Blocks {
		if t.Col == room.FrontCol {
			room.IncColor(b.Color)
		}
	}
}

func newRoomData(lvl cfg.LevelConfig) *components.RoomData {
	cols := lvl.Cols()
	return &components.RoomData{
		Walls:       make(map[components.Tile]*components.WallData),
		Blocks:      make(map[components.Tile]*components.BlockData),
		Cols:        cols,
		Rows:        lvl.Rows(),
		TileSize:    lvl.TileSize,
		Columns:     lvl.Room.Columns,
		Colors:      lvl.Room.Colors,
		FrontCol:    cols - lvl.Room.Columns - 1,
		FrontColors: make(map[cfg.Color]int),
	}
}

func createWall(w donburi.World, room *components.RoomData, t components.Tile) {
	x, y := components.TileOrigin(t, room.TileSize)
	room.Walls[t] = &components.WallData{
		Handle: components.RendererOf(w).Create(wallVisual, x, y, components.FacingRight),
		Object: addTileObject(w, room, t, tags.ResolvWall),
	}
}

// discardRoom releases everything a half-built room acquired.
func discardRoom(w donburi.World, room *components.RoomData) {
	r := components.RendererOf(w)
	space := components.SpaceOf(w)
	for _, wall := range room.Walls {
		r.Destroy(wall.Handle)
		if space != nil && wall.Object != nil {
			space.Remove(wall.Object)
		}
	}
	for _, block := range room.Blocks {
		r.Destroy(block.Handle)
		if space != nil && block.Object != nil {
			space.Remove(block.Object)
		}
	}
}

func spawnRoom(w donburi.World, room *components.RoomData) *donburi.Entry {
	entry := archetypes.Room.Spawn(w)
	components.Room.Set(entry, room)

	log.WithFields(log.Fields{
		"cols":   room.Cols,
		"rows":   room.Rows,
		"walls":  len(room.Walls),
		"blocks": len(room.Blocks),
	}).Info("Room created")

	return entry
}
