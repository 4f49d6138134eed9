package config

import (
	"fmt"
	"sort"
)

// Levels holds every playable level variant, keyed by name.
var Levels map[string]LevelConfig

func init() {
	Levels = map[string]LevelConfig{
		// Second prototype: full palette, four block columns
		"castle": {
			Name:     "castle",
			TileSize: 20,
			Width:    320,
			Height:   240,
			Policy:   PolicyGrid,
			Room:     RoomConfig{Columns: 4, Colors: 6},
			Scale:    3,
			Speed:    120, // One unit per tick at 120 TPS, so landings hit the floor exactly
		},
		// First prototype: three columns drawn from four colors
		"prototype": {
			Name:     "prototype",
			TileSize: 20,
			Width:    320,
			Height:   240,
			Policy:   PolicyGrid,
			Room:     RoomConfig{Columns: 3, Colors: 4},
			Scale:    4,
			Speed:    120,
		},
		// Platformer variant: no blocks, clamped to the inside of the wall ring
		"tower": {
			Name:     "tower",
			TileSize: 20,
			Width:    320,
			Height:   240,
			Policy:   PolicyRect,
			Room:     RoomConfig{Columns: 0, Colors: 6},
			Scale:    3,
			Speed:    120,
		},
		// Hand-made room loaded from Tiled
		"gallery": {
			Name:     "gallery",
			TileSize: 20,
			Width:    320,
			Height:   240,
			Policy:   PolicyGrid,
			Layout:   "levels/gallery.tmx",
			Room:     RoomConfig{Columns: 4, Colors: 6},
			Scale:    3,
			Speed:    120,
		},
		// Large tiles; the hero crosses four tiles per second
		"keep": {
			Name:     "keep",
			TileSize: 80,
			Width:    1280,
			Height:   960,
			Policy:   PolicyGrid,
			Room:     RoomConfig{Columns: 2, Colors: 6},
			Scale:    1,
			Speed:    300,
		},
	}
}

// LevelNames returns the configured level names in sorted order.
func LevelNames() []string {
	names := make([]string, 0, len(Levels))
	for name := range Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentLevel returns the level selected by C.Level.
func CurrentLevel() (LevelConfig, error) {
	return LevelByName(C.Level)
}

// LevelByName looks up a level variant.
func LevelByName(name string) (LevelConfig, error) {
	lvl, ok := Levels[name]
	if !ok {
		return LevelConfig{}, fmt.Errorf("unknown level %q (have %v)", name, LevelNames())
	}
	return lvl, nil
}
