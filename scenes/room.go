package scenes

import (
	"sync"

	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/input"
	"github.com/colorwandcastle/colorwand/render"
	"github.com/colorwandcastle/colorwand/systems"
	"github.com/colorwandcastle/colorwand/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerDefault ecs.LayerID = iota
)

// RoomScene plays one room of the configured level.
type RoomScene struct {
	ecs          *ecs.ECS
	sprites      *render.Sprites
	level        cfg.LevelConfig
	sceneChanger SceneChanger
	once         sync.Once
}

func NewRoomScene(sc SceneChanger, level cfg.LevelConfig) *RoomScene {
	return &RoomScene{sceneChanger: sc, level: level}
}

func (rs *RoomScene) Update() {
	rs.once.Do(rs.configure)

	// R rebuilds the room with fresh colors
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		log.WithField("level", rs.level.Name).Info("Restarting room")
		rs.sceneChanger.ChangeScene(NewRoomScene(rs.sceneChanger, rs.level))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if e, ok := components.Settings.First(rs.ecs.World); ok {
			settings := components.Settings.Get(e)
			settings.Debug = !settings.Debug
		}
	}

	rs.ecs.Update()
	rs.sprites.Update(float32(cfg.Dt()))
}

func (rs *RoomScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RoomScene) configure() {
	world := donburi.NewWorld()
	rs.ecs = ecs.NewECS(world)
	rs.sprites = render.NewSprites(rs.level.Height, rs.level.TileSize)

	// Order matters: the star reads the player's new position and blocks
	// are only removed after every collision query has run.
	rs.ecs.AddSystem(func(e *ecs.ECS) { systems.PollInput(e.World) })
	rs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdatePlayers(e.World, cfg.Dt()) })
	rs.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateStars(e.World, cfg.Dt()) })
	rs.ecs.AddSystem(func(e *ecs.ECS) { systems.SweepBlocks(e.World) })
	rs.ecs.AddSystem(func(e *ecs.ECS) { systems.SyncObjects(e.World) })

	rs.ecs.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) { rs.sprites.Draw(screen) })
	rs.ecs.AddRenderer(layerDefault, render.DrawHUD)
	rs.ecs.AddRenderer(layerDefault, render.DrawDebug)

	if err := factory.CreateScene(world, rs.level, rs.sprites, input.NewKeyboard(), cfg.Debug.Seed); err != nil {
		log.WithError(err).Fatal("Failed to build room")
	}
	factory.CreateSettings(world, cfg.Debug.Overlay)
}
