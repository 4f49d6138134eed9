package factory

import (
	"testing"

	"github.com/colorwandcastle/colorwand/assets"
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func castle(t *testing.T) cfg.LevelConfig {
	t.Helper()
	lvl, err := cfg.LevelByName("castle")
	require.NoError(t, err)
	return lvl
}

func newRoomWorld(t *testing.T, lvl cfg.LevelConfig) (donburi.World, *components.RoomData) {
	t.Helper()
	w := donburi.NewWorld()
	CreateSpace(w, lvl.Width, lvl.Height, lvl.TileSize, lvl.TileSize)
	level := CreateLevel(w, lvl, 7)
	room, err := CreateRoom(w, lvl, components.Level.Get(level))
	require.NoError(t, err)
	return w, components.Room.Get(room)
}

func TestCreateRoom_Layout(t *testing.T) {
	lvl := castle(t)
	require.Equal(t, 4, lvl.Room.Columns)
	require.Equal(t, 6, lvl.Room.Colors)

	_, room := newRoomWorld(t, lvl)

	assert.Equal(t, 16, room.Cols)
	assert.Equal(t, 12, room.Rows)
	assert.Len(t, room.Walls, 2*16+2*10)
	assert.Len(t, room.Blocks, 4*10)

	for tile := range room.Walls {
		ring := tile.Row == 0 || tile.Row == 11 || tile.Col == 0 || tile.Col == 15
		assert.True(t, ring, "wall at %v", tile)
	}
	for tile, b := range room.Blocks {
		assert.True(t, tile.Col >= 11 && tile.Col <= 14, "block column %d", tile.Col)
		assert.True(t, tile.Row >= 1 && tile.Row <= 10, "block row %d", tile.Row)
		assert.NotContains(t, room.Walls, tile)
		assert.NoError(t, b.Color.Validate())
	}
}

func TestCreateRoom_ColorPrefix(t *testing.T) {
	lvl, err := cfg.LevelByName("prototype")
	require.NoError(t, err)
	require.Equal(t, 4, lvl.Room.Colors)

	_, room := newRoomWorld(t, lvl)

	assert.Len(t, room.Blocks, lvl.Room.Columns*(lvl.Rows()-2))
	for _, b := range room.Blocks {
		assert.Less(t, int(b.Color), 4)
	}
}

func TestCreateRoom_FrontColors(t *testing.T) {
	_, room := newRoomWorld(t, castle(t))

	assert.Equal(t, 11, room.FrontCol)
	var want [cfg.ColorCount]int
	for tile, b := range room.Blocks {
		if tile.Col == 11 {
			want[b.Color]++
		}
	}
	for c, n := range want {
		assert.Equal(t, n, room.FrontColors[cfg.Color(c)], "color %s", cfg.Color(c))
	}
}

func TestCreateRoom_SeedIsDeterministic(t *testing.T) {
	_, a := newRoomWorld(t, castle(t))
	_, b := newRoomWorld(t, castle(t))

	for tile, block := range a.Blocks {
		assert.Equal(t, block.Color, b.Blocks[tile].Color)
	}
}

func TestCreateBlock_RejectsInvalid(t *testing.T) {
	w, room := newRoomWorld(t, castle(t))
	before := len(room.Blocks)
	objects := len(components.SpaceOf(w).Objects())
	free := components.Tile{Row: 5, Col: 5}

	err := CreateBlock(w, room, free, cfg.Color(42))
	assert.ErrorIs(t, err, cfg.ErrInvalidColor)

	err = CreateBlock(w, room, components.Tile{Row: 0, Col: 5}, cfg.ColorRed)
	assert.Error(t, err)

	assert.Len(t, room.Blocks, before)
	assert.NotContains(t, room.Blocks, free)
	assert.Len(t, components.SpaceOf(w).Objects(), objects)
}

func TestCreateRoomFromLayout(t *testing.T) {
	lvl, err := cfg.LevelByName("gallery")
	require.NoError(t, err)
	layout, err := assets.LoadRoomLayout(lvl.Layout)
	require.NoError(t, err)

	w := donburi.NewWorld()
	CreateLevel(w, lvl, 1)
	entry, err := CreateRoomFromLayout(w, lvl, layout)
	require.NoError(t, err)
	room := components.Room.Get(entry)

	assert.Len(t, room.Walls, len(layout.Walls))
	assert.Len(t, room.Blocks, len(layout.Blocks))
	// The top row of the file is the room's top row
	assert.Contains(t, room.Walls, components.Tile{Row: room.Rows - 1, Col: 3})
	for _, b := range layout.Blocks {
		tile := components.Tile{Row: room.Rows - 1 - b.Row, Col: b.Col}
		require.Contains(t, room.Blocks, tile)
		assert.Equal(t, b.Color, room.Blocks[tile].Color)
	}
	assert.Equal(t, 10, room.FrontCol)
	assert.NotEmpty(t, room.FrontColors)
}

func TestCreateRoomFromLayout_SizeMismatch(t *testing.T) {
	layout := &assets.RoomLayout{Name: "tiny", Cols: 4, Rows: 3}
	w := donburi.NewWorld()

	_, err := CreateRoomFromLayout(w, castle(t), layout)
	assert.Error(t, err)
}

func TestCreateRoomFromLayout_TileSizeMismatch(t *testing.T) {
	lvl := castle(t)
	layout := &assets.RoomLayout{Name: "small-tiles", Cols: lvl.Cols(), Rows: lvl.Rows(), TileSize: 16}
	w := donburi.NewWorld()

	_, err := CreateRoomFromLayout(w, lvl, layout)
	assert.Error(t, err)
	_, ok := components.Room.First(w)
	assert.False(t, ok)
}
