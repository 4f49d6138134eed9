package components

import (
	"github.com/yohamta/donburi"
)

// VisualID is a symbolic name for what the renderer should draw, such as
// "player-walk" or "star-red". The core never deals in pixels.
type VisualID string

// Handle identifies something the renderer is drawing. Zero is no handle.
type Handle uint64

// Renderer is the drawing collaborator.
type Renderer interface {
	Create(visual VisualID, x, y float64, facing Facing) Handle
	SetPosition(h Handle, x, y float64)
	SetVisual(h Handle, visual VisualID, facing Facing)
	Destroy(h Handle)
}

// RenderData is the singleton holding the active renderer.
type RenderData struct {
	Renderer Renderer
}

var Render = donburi.NewComponentType[RenderData]()

// NopRenderer hands out handles and draws nothing.
type NopRenderer struct {
	next Handle
}

func (n *NopRenderer) Create(VisualID, float64, float64, Facing) Handle {
	n.next++
	return n.next
}

func (n *NopRenderer) SetPosition(Handle, float64, float64) {}
func (n *NopRenderer) SetVisual(Handle, VisualID, Facing)   {}
func (n *NopRenderer) Destroy(Handle)                       {}

// RendererOf returns the world's renderer, or a NopRenderer when none is set.
func RendererOf(w donburi.World) Renderer {
	if e, ok := Render.First(w); ok {
		if r := Render.Get(e).Renderer; r != nil {
			return r
		}
	}
	return &NopRenderer{}
}
