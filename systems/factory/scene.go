package factory

import (
	"fmt"

	"github.com/colorwandcastle/colorwand/assets"
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/yohamta/donburi"
)

// CreateScene builds the level singleton, the collision mirror, the room and the
// hero into w.
func CreateScene(w donburi.World, lvl cfg.LevelConfig, r components.Renderer, src components.InputSource, seed int64) error {
	CreateRender(w, r)
	level := CreateLevel(w, lvl, seed)
	levelData := components.Level.Get(level)
	CreateSpace(w, lvl.Width, lvl.Height, lvl.TileSize, lvl.TileSize)

	x := float64(lvl.Width) * cfg.Player.SpawnFracX
	y := float64(lvl.Height) * cfg.Player.SpawnFracY

	if lvl.Layout != "" {
		layout, err := assets.LoadRoomLayout(lvl.Layout)
		if err != nil {
			return err
		}
		room, err := CreateRoomFromLayout(w, lvl, layout)
		if err != nil {
			return err
		}
		if len(layout.Spawns) > 0 {
			x = layout.Spawns[0].X
			y = components.Room.Get(room).Height() - layout.Spawns[0].Y
		}
	} else if _, err := CreateRoom(w, lvl, levelData); err != nil {
		return err
	}

	if _, err := CreatePlayer(w, x, y, src, lvl.PlayerSpeed()); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	return nil
}
