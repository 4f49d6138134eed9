package components

import (
	"testing"

	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestNewBoundsRejectsNegative(t *testing.T) {
	_, err := NewBounds(5, -1, 15, 10)
	require.ErrorIs(t, err, ErrNegativeBounds)

	b, err := NewBounds(5, 10, 15, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Panics(t, func() { MustBounds(cfg.Edges{Up: -3}) })
}

func TestActorEdges(t *testing.T) {
	a := &ActorData{
		Position: math.Vec2{X: 100, Y: 50},
		Bounds:   MustBounds(cfg.Edges{Up: 5, Left: 10, Down: 15, Right: 10}),
	}
	assert.Equal(t, 55.0, a.Top())
	assert.Equal(t, 35.0, a.Bottom())
	assert.Equal(t, 90.0, a.LeftEdge())
	assert.Equal(t, 110.0, a.RightEdge())
}

func TestActorEdgeRoundTrip(t *testing.T) {
	bounds := []cfg.Edges{
		{},
		{Up: 5, Left: 10, Down: 15, Right: 10},
		{Up: 5, Left: 5, Down: 5, Right: 5},
		{Up: 0, Left: 3, Down: 40, Right: 1},
	}
	values := []float64{-17.5, 0, 20, 123.456, 240}

	for _, e := range bounds {
		for _, v := range values {
			a := &ActorData{Position: math.Vec2{X: 7, Y: 9}, Bounds: MustBounds(e)}

			a.SetTop(v)
			assert.Equal(t, v, a.Top())
			a.SetBottom(v)
			assert.Equal(t, v, a.Bottom())
			a.SetLeftEdge(v)
			assert.Equal(t, v, a.LeftEdge())
			a.SetRightEdge(v)
			assert.Equal(t, v, a.RightEdge())
		}
	}
}

func TestSetTopMovesAnchor(t *testing.T) {
	a := &ActorData{Bounds: MustBounds(cfg.Edges{Up: 5, Left: 10, Down: 15, Right: 10})}
	a.SetTop(100)
	assert.Equal(t, 95.0, a.Position.Y)
	a.SetLeftEdge(30)
	assert.Equal(t, 40.0, a.Position.X)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, FacingLeft, FacingRight.Opposite())
	assert.Equal(t, FacingRight, FacingLeft.Opposite())
	assert.Equal(t, -1.0, FacingLeft.Sign())
	assert.Equal(t, 1.0, FacingRight.Sign())
}
