package factory

import (
	"math/rand"
	"time"

	"github.com/colorwandcastle/colorwand/archetypes"
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level singleton. The playfield is the inside of the
// wall ring, and its lower edge is the floor bound. A zero seed draws one
// from the clock.
func CreateLevel(w donburi.World, lvl cfg.LevelConfig, seed int64) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	data := &components.LevelData{
		Config: lvl,
		Rand:   rand.New(rand.NewSource(seed)),
	}
	tile := float64(lvl.TileSize)
	data.Playfield.Left = tile
	data.Playfield.Down = tile
	data.Playfield.Right = float64(lvl.Width) - tile
	data.Playfield.Up = float64(lvl.Height) - tile

	components.Level.Set(level, data)
	return level
}

// CreateSettings spawns the runtime settings singleton.
func CreateSettings(w donburi.World, debug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(settings, components.SettingsData{Debug: debug})
	return settings
}

// CreateRender registers the renderer every factory draws through.
func CreateRender(w donburi.World, r components.Renderer) *donburi.Entry {
	render := archetypes.Render.Spawn(w)
	components.Render.SetValue(render, components.RenderData{Renderer: r})
	return render
}
