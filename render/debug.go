package render

import (
	"fmt"
	"image/color"

	"github.com/colorwandcastle/colorwand/components"
	"github.com/colorwandcastle/colorwand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision mirror when the debug
// overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settings).Debug {
		return
	}
	space := components.SpaceOf(ecs.World)
	if space == nil {
		return
	}

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvWall) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvBlock) {
			c = color.RGBA{255, 255, 0, 255} // Yellow
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvStar) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.0f", ebiten.ActualTPS()), 2, screen.Bounds().Dy()-16)
}
