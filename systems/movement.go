package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
)

// move applies (dx, dy) to the actor under the level's collision policy.
func move(a *components.ActorData, room *components.RoomData, level *components.LevelData, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	switch level.Config.Policy {
	case cfg.PolicyRect:
		moveClamped(a, level, dx, dy)
	default:
		moveGrid(a, room, dx, dy)
	}
}

// moveGrid resolves the whole gesture against one saved origin. When the
// combined move is blocked, each axis is tried alone from that origin and
// only the components that are blocked on their own are reverted. A move
// that is blocked only diagonally reverts both.
func moveGrid(a *components.ActorData, room *components.RoomData, dx, dy float64) {
	origX, origY := a.Position.X, a.Position.Y

	a.Position.X, a.Position.Y = origX+dx, origY+dy
	if room == nil || !solid(a, room) {
		return
	}

	a.Position.X, a.Position.Y = origX+dx, origY
	blockedX := dx != 0 && solid(a, room)

	a.Position.X, a.Position.Y = origX, origY+dy
	blockedY := dy != 0 && solid(a, room)

	if !blockedX && !blockedY {
		blockedX, blockedY = true, true
	}

	a.Position.X, a.Position.Y = origX+dx, origY+dy
	if blockedX {
		a.Position.X = origX
	}
	if blockedY {
		a.Position.Y = origY
	}
}

// moveClamped keeps the actor's box inside the playfield rectangle.
func moveClamped(a *components.ActorData, level *components.LevelData, dx, dy float64) {
	a.Position.X += dx
	a.Position.Y += dy

	pf := level.Playfield
	if a.LeftEdge() < pf.Left {
		a.SetLeftEdge(pf.Left)
	}
	if a.RightEdge() > pf.Right {
		a.SetRightEdge(pf.Right)
	}
	if a.Bottom() < pf.Down {
		a.SetBottom(pf.Down)
	}
	if a.Top() > pf.Up {
		a.SetTop(pf.Up)
	}
}
