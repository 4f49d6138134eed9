package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/systems/factory"
	"github.com/colorwandcastle/colorwand/tags"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdateStars moves every star. A following star snaps beside its owner; a
// shooting star travels, bounces off blocks and is replaced when it reaches
// a wall.
func UpdateStars(w donburi.World, dt float64) {
	room := roomOf(w)
	if room == nil {
		return
	}

	// Collect first: a star hitting a wall is removed and replaced.
	var stars []*donburi.Entry
	tags.Star.Each(w, func(e *donburi.Entry) {
		stars = append(stars, e)
	})

	r := components.RendererOf(w)
	for _, e := range stars {
		if !e.Valid() {
			continue
		}
		updateStar(w, r, e, room, dt)
	}
}

func updateStar(w donburi.World, r components.Renderer, e *donburi.Entry, room *components.RoomData, dt float64) {
	star := components.Star.Get(e)
	actor := components.Actor.Get(e)
	state := components.State.Get(e)

	switch state.CurrentState {
	case cfg.StarFollowing:
		if star.Owner == nil || !star.Owner.Valid() {
			return
		}
		actor.Position.X, actor.Position.Y = components.FollowPosition(components.Actor.Get(star.Owner), room.TileSize)

	case cfg.StarShooting:
		origY := actor.Position.Y
		actor.Position.X += star.Velocity * dt

		if BlockedBy(actor, room.Walls, room.TileSize) {
			replaceStar(w, e)
			return
		}
		if BlockedBy(actor, room.Blocks, room.TileSize) {
			// X stays where it is; the flipped velocity carries the star out
			// on the next tick.
			actor.Position.Y = origY
			star.Velocity = -star.Velocity
			markBlocks(room, actor, star.Color)
		}
	}

	state.StateTimer++
	r.SetPosition(actor.Handle, actor.Position.X, actor.Position.Y)
}

// replaceStar despawns a star and attaches a fresh Following one to its owner
// in the same call.
func replaceStar(w donburi.World, e *donburi.Entry) {
	star := components.Star.Get(e)
	owner := star.Owner
	log.WithField("id", star.ID).Debug("Star hit wall")

	factory.DestroyStar(w, e)
	if owner == nil || !owner.Valid() {
		return
	}

	next, err := factory.CreateStar(w, owner, factory.StarColor(w))
	if err != nil {
		log.WithError(err).Error("Failed to replace star")
		components.Player.Get(owner).Star = nil
		return
	}
	components.Player.Get(owner).Star = next
}

// markBlocks queues the blocks under the star's corners that match its color.
// They are removed by SweepBlocks once every collision query this frame is
// done.
func markBlocks(room *components.RoomData, actor *components.ActorData, color cfg.Color) {
	for _, t := range CornerTiles(actor, room.TileSize) {
		b, ok := room.Blocks[t]
		if !ok || b.Color != color || pending(room, t) {
			continue
		}
		room.Pending = append(room.Pending, t)
	}
}

func pending(room *components.RoomData, t components.Tile) bool {
	for _, p := range room.Pending {
		if p == t {
			return true
		}
	}
	return false
}
