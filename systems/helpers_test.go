package systems

import (
	"testing"

	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// recordingRenderer remembers what the systems asked it to draw.
type recordingRenderer struct {
	next      components.Handle
	visuals   map[components.Handle]components.VisualID
	facings   map[components.Handle]components.Facing
	destroyed []components.Handle
	setVisual int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		visuals: make(map[components.Handle]components.VisualID),
		facings: make(map[components.Handle]components.Facing),
	}
}

func (r *recordingRenderer) Create(v components.VisualID, _, _ float64, f components.Facing) components.Handle {
	r.next++
	r.visuals[r.next] = v
	r.facings[r.next] = f
	return r.next
}

func (r *recordingRenderer) SetPosition(components.Handle, float64, float64) {}

func (r *recordingRenderer) SetVisual(h components.Handle, v components.VisualID, f components.Facing) {
	r.setVisual++
	r.visuals[h] = v
	r.facings[h] = f
}

func (r *recordingRenderer) Destroy(h components.Handle) {
	delete(r.visuals, h)
	r.destroyed = append(r.destroyed, h)
}

type testScene struct {
	world    donburi.World
	renderer *recordingRenderer
	room     *components.RoomData
	level    *components.LevelData
	input    components.StaticInput
	player   *donburi.Entry
}

func castleLevel() cfg.LevelConfig {
	return cfg.LevelConfig{
		Name:     "test",
		TileSize: 20,
		Width:    320,
		Height:   240,
		Policy:   cfg.PolicyGrid,
		Room:     cfg.RoomConfig{Columns: 4, Colors: 6},
		Scale:    1,
	}
}

// newTestScene builds a room and a player whose bottom edge sits at
// bottom, with speed 80 so a 0.25s tick moves exactly one tile.
func newTestScene(t *testing.T, lvl cfg.LevelConfig, x, bottom float64) *testScene {
	t.Helper()
	s := &testScene{
		world:    donburi.NewWorld(),
		renderer: newRecordingRenderer(),
		input:    components.StaticInput{},
	}
	factory.CreateRender(s.world, s.renderer)
	factory.CreateSpace(s.world, lvl.Width, lvl.Height, lvl.TileSize, lvl.TileSize)
	level := factory.CreateLevel(s.world, lvl, 1)
	s.level = components.Level.Get(level)

	room, err := factory.CreateRoom(s.world, lvl, s.level)
	require.NoError(t, err)
	s.room = components.Room.Get(room)

	y := bottom + float64(cfg.Player.Bounds.Down)
	s.player, err = factory.CreatePlayer(s.world, x, y, s.input, 80)
	require.NoError(t, err)
	return s
}

func (s *testScene) actor() *components.ActorData { return components.Actor.Get(s.player) }

func (s *testScene) state() *components.StateData { return components.State.Get(s.player) }

func (s *testScene) star() *donburi.Entry { return components.Player.Get(s.player).Star }

func (s *testScene) hold(cs ...components.Control) {
	s.input.Hold(cs...)
}

// tick runs the frame systems in scene order.
func (s *testScene) tick(dt float64) {
	PollInput(s.world)
	UpdatePlayers(s.world, dt)
	UpdateStars(s.world, dt)
	SweepBlocks(s.world)
	SyncObjects(s.world)
}

func countStars(w donburi.World) int {
	n := 0
	components.Star.Each(w, func(*donburi.Entry) { n++ })
	return n
}
