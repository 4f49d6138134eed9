package factory

import (
	"fmt"
	"sort"

	"github.com/colorwandcastle/colorwand/archetypes"
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/tags"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateStar spawns a Following star for owner. The color is checked before
// anything is created, so a bad color leaves the world unchanged.
func CreateStar(w donburi.World, owner *donburi.Entry, color cfg.Color) (*donburi.Entry, error) {
	if err := color.Validate(); err != nil {
		return nil, fmt.Errorf("star: %w", err)
	}
	bounds, err := components.NewBounds(cfg.Star.Bounds.Up, cfg.Star.Bounds.Left, cfg.Star.Bounds.Down, cfg.Star.Bounds.Right)
	if err != nil {
		return nil, fmt.Errorf("star bounds: %w", err)
	}

	ownerActor := components.Actor.Get(owner)
	x, y := components.FollowPosition(ownerActor, tileSize(w))

	star := archetypes.Star.Spawn(w)
	actor := &components.ActorData{
		Position: math.Vec2{X: x, Y: y},
		Bounds:   bounds,
		Facing:   ownerActor.Facing,
	}
	actor.Handle = components.RendererOf(w).Create(components.StarVisual(color), x, y, actor.Facing)
	components.Actor.Set(star, actor)

	data := components.StarData{
		ID:    uuid.New(),
		Color: color,
		Owner: owner,
	}
	components.Star.SetValue(star, data)
	components.State.SetValue(star, components.StateData{
		CurrentState:  cfg.StarFollowing,
		PreviousState: cfg.StateNone,
	})
	addActorObject(w, star, actor, tags.ResolvStar)

	log.WithFields(log.Fields{
		"id":    data.ID,
		"color": color,
	}).Debug("Star created")

	return star, nil
}

// DestroyStar releases a star's render handle and debug object and removes it.
func DestroyStar(w donburi.World, star *donburi.Entry) {
	if star.Valid() && star.HasComponent(components.Star) {
		log.WithField("id", components.Star.Get(star).ID).Debug("Star destroyed")
	}
	removeActor(w, star)
}

// StarColor picks the color of a new star: one of the front column's colors
// when any remain, else one of the room's eligible palette colors.
func StarColor(w donburi.World) cfg.Color {
	var eligible []cfg.Color
	room, hasRoom := components.Room.First(w)
	if hasRoom {
		roomData := components.Room.Get(room)
		for c := range roomData.FrontColors {
			eligible = append(eligible, c)
		}
		// Map order is random; sort so a seeded level replays the same colors
		sort.Slice(eligible, func(i, j int) bool { return eligible[i] < eligible[j] })
		if len(eligible) == 0 {
			eligible = cfg.PalettePrefix(roomData.Colors)
		}
	} else {
		eligible = cfg.Palette[:]
	}

	level, ok := components.Level.First(w)
	if !ok {
		return eligible[0]
	}
	return eligible[components.Level.Get(level).Rand.Intn(len(eligible))]
}

func tileSize(w donburi.World) int {
	if room, ok := components.Room.First(w); ok {
		return components.Room.Get(room).TileSize
	}
	if level, ok := components.Level.First(w); ok {
		return components.Level.Get(level).Config.TileSize
	}
	return 1
}
