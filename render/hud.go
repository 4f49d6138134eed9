package render

import (
	"fmt"

	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/colorwandcastle/colorwand/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD shows the hero's state and star color in the top-left corner and
// the blocks left per color along the top edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	face := fonts.HUD.Get()
	margin := cfg.UI.HUDMargin
	swatch := float32(cfg.UI.HUDSwatchSize)
	lineH := face.Metrics().Height.Ceil()

	state := components.State.Get(playerEntry)
	x, y := int(margin), int(margin)+lineH
	text.Draw(screen, state.CurrentState.String(), face, x, y, cfg.White)

	if star := components.Player.Get(playerEntry).Star; star != nil && star.Valid() {
		starColor := components.Star.Get(star).Color
		vector.FillRect(screen, float32(margin), float32(y+2), swatch, swatch, starColor.RGBA(), false)
		text.Draw(screen, starColor.String(), face, x+int(swatch)+2, y+lineH, cfg.White)
	}

	roomEntry, ok := components.Room.First(ecs.World)
	if !ok {
		return
	}
	room := components.Room.Get(roomEntry)
	counts := room.BlockCounts()

	width := screen.Bounds().Dx()
	cx := width - int(margin)
	for c := len(counts) - 1; c >= 0; c-- {
		if counts[c] == 0 {
			continue
		}
		label := fmt.Sprintf("%d", counts[c])
		labelW := text.BoundString(face, label).Dx()
		cx -= labelW
		text.Draw(screen, label, face, cx, y, cfg.White)
		cx -= int(swatch) + 2
		vector.FillRect(screen, float32(cx), float32(y)-swatch, swatch, swatch, cfg.Color(c).RGBA(), false)
		cx -= int(margin)
	}
}
