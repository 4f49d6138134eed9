package components

import (
	"errors"
	"fmt"

	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ErrNegativeBounds is returned when a hit box offset is below zero.
var ErrNegativeBounds = errors.New("bounds offsets must be non-negative")

// Facing is the horizontal direction an actor looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and +1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

// Opposite returns the other facing.
func (f Facing) Opposite() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// Bounds holds the distance from an anchor point to each edge of a hit box.
// Offsets are unexported so a Bounds cannot change once built.
type Bounds struct {
	up, left, down, right int
}

// NewBounds builds a Bounds, rejecting negative offsets.
func NewBounds(up, left, down, right int) (Bounds, error) {
	if up < 0 || left < 0 || down < 0 || right < 0 {
		return Bounds{}, fmt.Errorf("%w: up=%d left=%d down=%d right=%d", ErrNegativeBounds, up, left, down, right)
	}
	return Bounds{up: up, left: left, down: down, right: right}, nil
}

// MustBounds is NewBounds for configuration values known to be valid.
func MustBounds(e cfg.Edges) Bounds {
	b, err := NewBounds(e.Up, e.Left, e.Down, e.Right)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bounds) Up() int    { return b.up }
func (b Bounds) Left() int  { return b.left }
func (b Bounds) Down() int  { return b.down }
func (b Bounds) Right() int { return b.right }

// Width is the horizontal extent of the hit box.
func (b Bounds) Width() int { return b.left + b.right }

// Height is the vertical extent of the hit box.
func (b Bounds) Height() int { return b.up + b.down }

// ActorData pairs a position with a hit box. World coordinates are y-up:
// Top is above the anchor and Bottom below it.
type ActorData struct {
	Position math.Vec2
	Bounds   Bounds
	Facing   Facing
	Handle   Handle // Render handle, zero when not shown
}

func (a *ActorData) Top() float64       { return a.Position.Y + float64(a.Bounds.up) }
func (a *ActorData) Bottom() float64    { return a.Position.Y - float64(a.Bounds.down) }
func (a *ActorData) LeftEdge() float64  { return a.Position.X - float64(a.Bounds.left) }
func (a *ActorData) RightEdge() float64 { return a.Position.X + float64(a.Bounds.right) }

func (a *ActorData) SetTop(v float64)       { a.Position.Y = v - float64(a.Bounds.up) }
func (a *ActorData) SetBottom(v float64)    { a.Position.Y = v + float64(a.Bounds.down) }
func (a *ActorData) SetLeftEdge(v float64)  { a.Position.X = v + float64(a.Bounds.left) }
func (a *ActorData) SetRightEdge(v float64) { a.Position.X = v - float64(a.Bounds.right) }

var Actor = donburi.NewComponentType[ActorData]()
