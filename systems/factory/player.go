package factory

import (
	"fmt"

	"github.com/colorwandcastle/colorwand/archetypes"
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/tags"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the hero at (x, y) with its star attached. The hero
// starts Standing when it is already on the floor and Flying otherwise.
func CreatePlayer(w donburi.World, x, y float64, src components.InputSource, speed float64) (*donburi.Entry, error) {
	bounds, err := components.NewBounds(cfg.Player.Bounds.Up, cfg.Player.Bounds.Left, cfg.Player.Bounds.Down, cfg.Player.Bounds.Right)
	if err != nil {
		return nil, fmt.Errorf("player bounds: %w", err)
	}

	player := archetypes.Player.Spawn(w)

	actor := &components.ActorData{
		Position: math.Vec2{X: x, Y: y},
		Bounds:   bounds,
		Facing:   components.FacingRight,
	}

	state := cfg.Flying
	if level, ok := components.Level.First(w); ok && actor.Bottom() == components.Level.Get(level).FloorBound() {
		state = cfg.Standing
	}
	actor.Handle = components.RendererOf(w).Create(components.VisualID(cfg.StateToVisual[state]), x, y, actor.Facing)

	components.Actor.Set(player, actor)
	components.State.SetValue(player, components.StateData{
		CurrentState:  state,
		PreviousState: cfg.StateNone,
	})
	components.Input.SetValue(player, components.InputData{Source: src})
	components.Player.SetValue(player, components.PlayerData{Speed: speed})
	addActorObject(w, player, actor, tags.ResolvPlayer)

	star, err := CreateStar(w, player, StarColor(w))
	if err != nil {
		removeActor(w, player)
		return nil, err
	}
	components.Player.Get(player).Star = star

	log.WithFields(log.Fields{
		"x":     x,
		"y":     y,
		"state": state,
		"speed": speed,
	}).Info("Player created")

	return player, nil
}

// removeActor destroys an actor's render handle and debug object, then
// removes the entity.
func removeActor(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	actor := components.Actor.Get(e)
	if actor.Handle != 0 {
		components.RendererOf(w).Destroy(actor.Handle)
	}
	if obj := components.Object.Get(e).Object; obj != nil {
		if space := components.SpaceOf(w); space != nil {
			space.Remove(obj)
		}
	}
	w.Remove(e.Entity())
}
