package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdatePlayers runs one tick of every player's locomotion state machine and
// then its fire control. Must run BEFORE UpdateStars, which reads the
// player's new position.
func UpdatePlayers(w donburi.World, dt float64) {
	level, ok := components.Level.First(w)
	if !ok {
		return
	}
	levelData := components.Level.Get(level)
	room := roomOf(w)
	r := components.RendererOf(w)

	components.Player.Each(w, func(e *donburi.Entry) {
		updatePlayer(r, e, room, levelData, dt)
	})
}

func updatePlayer(r components.Renderer, e *donburi.Entry, room *components.RoomData, level *components.LevelData, dt float64) {
	player := components.Player.Get(e)
	actor := components.Actor.Get(e)
	state := components.State.Get(e)
	in := components.Input.Get(e)

	step := player.Speed * dt

	switch state.CurrentState {
	case cfg.Standing:
		updateStanding(r, actor, state, in, room, level, step)
	case cfg.Walking:
		updateWalking(r, actor, state, in, room, level, step)
	default:
		updateFlying(r, actor, state, in, room, level, step)
	}
	state.StateTimer++

	r.SetPosition(actor.Handle, actor.Position.X, actor.Position.Y)
	updateFire(r, player, actor, in, room)
}

// updateFlying moves freely on both axes. Touching the floor lands the actor.
func updateFlying(r components.Renderer, actor *components.ActorData, state *components.StateData, in *components.InputData, room *components.RoomData, level *components.LevelData, step float64) {
	var dx, dy float64
	if f, ok := horizontal(in); ok {
		dx = f.Sign() * step
		if face(actor, f) {
			enterState(r, actor, state, cfg.Flying)
		}
	}
	if in.Held[components.ControlUp] {
		dy += step
	}
	if in.Held[components.ControlDown] {
		dy -= step
	}
	move(actor, room, level, dx, dy)

	if actor.Bottom() == level.FloorBound() {
		enterState(r, actor, state, cfg.Standing)
	}
}

func updateStanding(r components.Renderer, actor *components.ActorData, state *components.StateData, in *components.InputData, room *components.RoomData, level *components.LevelData, step float64) {
	if in.Held[components.ControlUp] {
		move(actor, room, level, 0, step)
		enterState(r, actor, state, cfg.Flying)
		return
	}
	if f, ok := horizontal(in); ok {
		face(actor, f)
		enterState(r, actor, state, cfg.Walking)
		move(actor, room, level, f.Sign()*step, 0)
	}
}

func updateWalking(r components.Renderer, actor *components.ActorData, state *components.StateData, in *components.InputData, room *components.RoomData, level *components.LevelData, step float64) {
	f, walking := horizontal(in)
	var dx float64
	if walking {
		dx = f.Sign() * step
	}

	if in.Held[components.ControlUp] {
		if walking {
			face(actor, f)
		}
		move(actor, room, level, dx, step)
		enterState(r, actor, state, cfg.Flying)
		return
	}

	if walking {
		if face(actor, f) {
			enterState(r, actor, state, cfg.Walking)
		}
		move(actor, room, level, dx, 0)
	}

	if !in.Held[components.ControlLeft] && !in.Held[components.ControlRight] {
		enterState(r, actor, state, cfg.Standing)
	}
}

// updateFire shoots the attached star once per press of fire. The latch is
// set by any press and cleared only by a release, so a press made while a
// shot is in flight does not fire the replacement star. A star whose follow
// position already overlaps a wall or block is not fired: it would bounce in
// place forever.
func updateFire(r components.Renderer, player *components.PlayerData, actor *components.ActorData, in *components.InputData, room *components.RoomData) {
	if !in.Held[components.ControlFire] {
		player.FireLatched = false
		return
	}
	if player.FireLatched {
		return
	}
	player.FireLatched = true

	star := player.Star
	if star == nil || !star.Valid() {
		return
	}
	starState := components.State.Get(star)
	if starState.CurrentState != cfg.StarFollowing {
		return
	}

	starActor := components.Actor.Get(star)
	if room != nil && !clearToFire(starActor, actor, room) {
		log.Debug("Star embedded, fire ignored")
		return
	}

	starData := components.Star.Get(star)
	starData.Velocity = actor.Facing.Sign() * cfg.Star.Speed
	enterState(r, starActor, starState, cfg.StarShooting)

	log.WithFields(log.Fields{
		"id":       starData.ID,
		"velocity": starData.Velocity,
	}).Debug("Star fired")
}

// clearToFire reports whether the star, placed at its follow position for the
// owner's current position, touches neither walls nor blocks.
func clearToFire(star, owner *components.ActorData, room *components.RoomData) bool {
	placed := *star
	placed.Position.X, placed.Position.Y = components.FollowPosition(owner, room.TileSize)
	return !solid(&placed, room)
}

func roomOf(w donburi.World) *components.RoomData {
	if e, ok := components.Room.First(w); ok {
		return components.Room.Get(e)
	}
	return nil
}
