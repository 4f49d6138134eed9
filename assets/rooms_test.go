package assets

import (
	"testing"
	"testing/fstest"

	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="10" tileheight="10" infinite="0">
 <tileset firstgid="1" name="bricks" tilewidth="10" tileheight="10" tilecount="1" columns="1"/>
 <tileset firstgid="2" name="blocks" tilewidth="10" tileheight="10" tilecount="6" columns="6">
  <tile id="4">
   <properties>
    <property name="color" value="blue"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="blocks" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,6,3,0,
0,0,0,0
</data>
 </layer>
</map>
`

const noLayersTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="10" tileheight="10" infinite="0">
 <layer id="1" name="decor" width="2" height="2">
  <data encoding="csv">
0,0,
0,0
</data>
 </layer>
</map>
`

func TestLoadRoomLayoutFS(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiny.tmx": {Data: []byte(tinyTMX)},
	}

	layout, err := LoadRoomLayoutFS(fsys, "levels/tiny.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tiny", layout.Name)
	assert.Equal(t, 4, layout.Cols)
	assert.Equal(t, 3, layout.Rows)
	assert.Equal(t, 10, layout.TileSize)
	assert.Len(t, layout.Walls, 10)
	assert.Contains(t, layout.Walls, LayoutTile{Row: 1, Col: 0})
	assert.NotContains(t, layout.Walls, LayoutTile{Row: 1, Col: 1})

	require.Len(t, layout.Blocks, 2)
	// Tile 4 carries a color property, tile 1 falls back to palette order
	assert.Equal(t, LayoutBlock{LayoutTile: LayoutTile{Row: 1, Col: 1}, Color: cfg.ColorBlue}, layout.Blocks[0])
	assert.Equal(t, LayoutBlock{LayoutTile: LayoutTile{Row: 1, Col: 2}, Color: cfg.ColorOrange}, layout.Blocks[1])
}

func TestLoadRoomLayoutFS_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(noLayersTMX)},
	}

	_, err := LoadRoomLayoutFS(fsys, "levels/empty.tmx")
	assert.ErrorIs(t, err, ErrNoRoomLayers)

	_, err = LoadRoomLayoutFS(fsys, "levels/missing.tmx")
	assert.Error(t, err)
}

func TestEmbeddedGallery(t *testing.T) {
	names, err := LayoutNames()
	require.NoError(t, err)
	assert.Contains(t, names, "levels/gallery.tmx")

	layout, err := LoadRoomLayout("levels/gallery.tmx")
	require.NoError(t, err)

	lvl, err := cfg.LevelByName("gallery")
	require.NoError(t, err)
	assert.Equal(t, lvl.Cols(), layout.Cols)
	assert.Equal(t, lvl.Rows(), layout.Rows)
	assert.Equal(t, lvl.TileSize, layout.TileSize)
	assert.NotEmpty(t, layout.Blocks)
	require.Len(t, layout.Spawns, 1)
	assert.Equal(t, Spawn{X: 60, Y: 120}, layout.Spawns[0])
}
