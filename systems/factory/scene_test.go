package factory

import (
	"testing"

	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCreateScene_AllLevels(t *testing.T) {
	for _, name := range cfg.LevelNames() {
		t.Run(name, func(t *testing.T) {
			lvl, err := cfg.LevelByName(name)
			require.NoError(t, err)

			w := donburi.NewWorld()
			err = CreateScene(w, lvl, &components.NopRenderer{}, components.StaticInput{}, 1)
			require.NoError(t, err)

			playerEntry, ok := components.Player.First(w)
			require.True(t, ok)
			player := components.Player.Get(playerEntry)
			assert.Equal(t, lvl.PlayerSpeed(), player.Speed)
			require.NotNil(t, player.Star)

			roomEntry, ok := components.Room.First(w)
			require.True(t, ok)
			room := components.Room.Get(roomEntry)
			assert.Equal(t, lvl.Cols(), room.Cols)
			assert.Equal(t, lvl.Rows(), room.Rows)
			assert.NotEmpty(t, room.Walls)
		})
	}
}

func TestCreateScene_GalleryUsesLayoutSpawn(t *testing.T) {
	lvl, err := cfg.LevelByName("gallery")
	require.NoError(t, err)

	w := donburi.NewWorld()
	require.NoError(t, CreateScene(w, lvl, &components.NopRenderer{}, components.StaticInput{}, 1))

	playerEntry, ok := components.Player.First(w)
	require.True(t, ok)
	pos := components.Actor.Get(playerEntry).Position
	assert.Equal(t, 60.0, pos.X)
	assert.Equal(t, 120.0, pos.Y)
}
