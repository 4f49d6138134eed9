package config

// Policy selects how the player controller resolves a proposed move.
type Policy int

const (
	// PolicyGrid tests the moved actor against the room's wall and block tiles.
	PolicyGrid Policy = iota
	// PolicyRect clamps the actor into a fixed playfield rectangle.
	PolicyRect
)

func (p Policy) String() string {
	switch p {
	case PolicyGrid:
		return "grid"
	case PolicyRect:
		return "rect"
	}
	return "unknown"
}

// Edges holds four edge offsets, in the same order as a hit box.
type Edges struct {
	Up, Left, Down, Right int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in units per second
	Speed float64

	// Collision box relative to the sprite anchor
	Bounds Edges

	// Spawn position as a fraction of the playfield
	SpawnFracX float64
	SpawnFracY float64
}

// StarConfig contains the projectile configuration values
type StarConfig struct {
	Speed float64 // Shot velocity in units per second

	// Following mode offsets from the player
	OffsetX float64 // Pixels to the side of the player's anchor
	OffsetY float64 // Pixels above the player's tile row

	Bounds Edges

	TwinkleSeconds float32 // Time per flip frame
}

// RoomConfig contains the block layout parameters
type RoomConfig struct {
	Columns int // Block columns, counted from the right-hand wall
	Colors  int // Palette prefix eligible for random block colors
}

// LevelConfig describes one playable level variant
type LevelConfig struct {
	Name     string
	TileSize int
	Width    int
	Height   int
	Policy   Policy
	Layout   string // Optional TMX file under assets/levels; empty = generated room
	Room     RoomConfig
	Scale    int // Window pixels per world unit

	// Player speed override for this level (0 = use Player.Speed)
	Speed float64
}

// Cols returns the number of tile columns in the level.
func (l LevelConfig) Cols() int { return l.Width / l.TileSize }

// Rows returns the number of tile rows in the level.
func (l LevelConfig) Rows() int { return l.Height / l.TileSize }

// PlayerSpeed returns the per-level speed, falling back to the global value.
func (l LevelConfig) PlayerSpeed() float64 {
	if l.Speed > 0 {
		return l.Speed
	}
	return Player.Speed
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin     float64
	HUDFontSize   float64
	HUDSwatchSize float64
	BlockInset    float64 // Pixels shaved off each block edge when drawn
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   // Draw collision boxes
	LogLevel string // logrus level name
	Seed     int64  // 0 = seed from clock
}

// Config holds general game configuration
type Config struct {
	TPS   int    // Updates per second
	Level string // Key into Levels
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Star StarConfig
var UI UIConfig
var Debug DebugConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		TPS:   120,
		Level: "castle",
	}

	Player = PlayerConfig{
		Speed:      80,
		Bounds:     Edges{Up: 5, Left: 10, Down: 15, Right: 10},
		SpawnFracX: 0.25,
		SpawnFracY: 0.5,
	}

	Star = StarConfig{
		Speed:          200,
		OffsetX:        25,
		OffsetY:        10,
		Bounds:         Edges{Up: 5, Left: 5, Down: 5, Right: 5},
		TwinkleSeconds: 0.25,
	}

	UI = UIConfig{
		HUDMargin:     4,
		HUDFontSize:   8,
		HUDSwatchSize: 6,
		BlockInset:    1,
	}

	Debug = DebugConfig{
		Overlay:  false,
		LogLevel: "info",
	}
}

// Dt returns the fixed timestep in seconds.
func Dt() float64 {
	return 1.0 / float64(C.TPS)
}
