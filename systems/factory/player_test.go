package factory

import (
	"testing"

	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type noInput struct{}

func (noInput) IsHeld(components.Control) bool { return false }

func countStars(w donburi.World) int {
	n := 0
	components.Star.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCreatePlayer_InitialState(t *testing.T) {
	lvl := castle(t)
	w, _ := newRoomWorld(t, lvl)

	floorY := 20 + float64(cfg.Player.Bounds.Down)
	grounded, err := CreatePlayer(w, 100, floorY, noInput{}, 80)
	require.NoError(t, err)
	assert.Equal(t, cfg.Standing, components.State.Get(grounded).CurrentState)

	flying, err := CreatePlayer(w, 100, 120, noInput{}, 80)
	require.NoError(t, err)
	assert.Equal(t, cfg.Flying, components.State.Get(flying).CurrentState)
}

func TestCreatePlayer_AttachesStar(t *testing.T) {
	w, room := newRoomWorld(t, castle(t))

	player, err := CreatePlayer(w, 100, 62, noInput{}, 80)
	require.NoError(t, err)

	star := components.Player.Get(player).Star
	require.NotNil(t, star)
	data := components.Star.Get(star)
	assert.Equal(t, player, data.Owner)
	assert.Contains(t, room.FrontColors, data.Color)
	assert.Equal(t, cfg.StarFollowing, components.State.Get(star).CurrentState)

	pos := components.Actor.Get(star).Position
	assert.Equal(t, 100+cfg.Star.OffsetX, pos.X)
	assert.Equal(t, 60+cfg.Star.OffsetY, pos.Y)
}

func TestCreateStar_RejectsInvalidColor(t *testing.T) {
	w, _ := newRoomWorld(t, castle(t))
	player, err := CreatePlayer(w, 100, 62, noInput{}, 80)
	require.NoError(t, err)
	stars := countStars(w)
	objects := len(components.SpaceOf(w).Objects())

	star, err := CreateStar(w, player, cfg.ColorCount)
	assert.ErrorIs(t, err, cfg.ErrInvalidColor)
	assert.Nil(t, star)
	assert.Equal(t, stars, countStars(w))
	assert.Len(t, components.SpaceOf(w).Objects(), objects)
}

func TestCreateStar_UniqueIDs(t *testing.T) {
	w, _ := newRoomWorld(t, castle(t))
	player, err := CreatePlayer(w, 100, 62, noInput{}, 80)
	require.NoError(t, err)

	a, err := CreateStar(w, player, cfg.ColorRed)
	require.NoError(t, err)
	b, err := CreateStar(w, player, cfg.ColorRed)
	require.NoError(t, err)

	assert.NotEqual(t, components.Star.Get(a).ID, components.Star.Get(b).ID)

	DestroyStar(w, a)
	assert.False(t, a.Valid())
	assert.True(t, b.Valid())
}

func TestStarColor_FallsBackToPalettePrefix(t *testing.T) {
	w, room := newRoomWorld(t, castle(t))
	room.FrontColors = map[cfg.Color]int{}
	room.Colors = 2

	for i := 0; i < 20; i++ {
		c := StarColor(w)
		assert.Less(t, int(c), 2)
	}
}
