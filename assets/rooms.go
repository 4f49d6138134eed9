// Package assets loads room layouts drawn in Tiled. It has no dependency on
// ebiten so the core and its tests stay headless.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// Layer and object group names read from TMX files.
const (
	LayerWalls       = "walls"
	LayerBlocks      = "blocks"
	GroupPlayerSpawn = "PlayerSpawn"
)

// ErrNoRoomLayers is returned for a TMX file without a walls or blocks layer.
var ErrNoRoomLayers = errors.New("no walls or blocks layer")

// LayoutTile is a cell of a layout. Row 0 is the top row, as in Tiled.
type LayoutTile struct {
	Row, Col int
}

// LayoutBlock is a colored block cell.
type LayoutBlock struct {
	LayoutTile
	Color cfg.Color
}

// Spawn is a player start position in map pixels, y-down.
type Spawn struct {
	X, Y float64
}

// RoomLayout is the tile content of one TMX room.
type RoomLayout struct {
	Name       string
	Cols, Rows int
	TileSize   int
	Walls      []LayoutTile
	Blocks     []LayoutBlock
	Spawns     []Spawn
}

// LoadRoomLayout reads an embedded layout such as "levels/gallery.tmx".
func LoadRoomLayout(tmxPath string) (*RoomLayout, error) {
	return LoadRoomLayoutFS(levelFS, tmxPath)
}

// LoadRoomLayoutFS parses a TMX file from fsys. It takes an fs.FS so tests
// and tools can pass fstest.MapFS or os.DirFS.
func LoadRoomLayoutFS(fsys fs.FS, tmxPath string) (*RoomLayout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &RoomLayout{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Cols:     levelMap.Width,
		Rows:     levelMap.Height,
		TileSize: levelMap.TileWidth,
	}

	found := false
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerWalls:
			found = true
			err := eachTile(levelMap, layer, func(t LayoutTile, _ *tiled.LayerTile) error {
				layout.Walls = append(layout.Walls, t)
				return nil
			})
			if err != nil {
				return nil, err
			}
		case LayerBlocks:
			found = true
			err := eachTile(levelMap, layer, func(t LayoutTile, tile *tiled.LayerTile) error {
				color, err := blockColor(tile)
				if err != nil {
					return fmt.Errorf("%s: block at row %d col %d: %w", tmxPath, t.Row, t.Col, err)
				}
				layout.Blocks = append(layout.Blocks, LayoutBlock{LayoutTile: t, Color: color})
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoRoomLayers)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupPlayerSpawn {
			continue
		}
		for _, o := range og.Objects {
			layout.Spawns = append(layout.Spawns, Spawn{X: o.X, Y: o.Y})
		}
	}
	// Sort spawns left-to-right for a stable first choice
	sort.Slice(layout.Spawns, func(i, j int) bool {
		return layout.Spawns[i].X < layout.Spawns[j].X
	})

	return layout, nil
}

// LayoutNames lists the embedded layouts.
func LayoutNames() ([]string, error) {
	matches, err := fs.Glob(levelFS, "levels/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func eachTile(m *tiled.Map, layer *tiled.Layer, fn func(LayoutTile, *tiled.LayerTile) error) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := layer.Tiles[y*m.Width+x]
			if tile.IsNil() {
				continue
			}
			if err := fn(LayoutTile{Row: y, Col: x}, tile); err != nil {
				return err
			}
		}
	}
	return nil
}

// blockColor reads the tileset "color" property, falling back to the tile's
// index within the tileset in palette order.
func blockColor(tile *tiled.LayerTile) (cfg.Color, error) {
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if name := tilesetTile.Properties.GetString("color"); name != "" {
				return cfg.ParseColor(name)
			}
		}
	}
	c := cfg.Color(tile.ID)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}
