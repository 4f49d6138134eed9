// Package render draws the game's symbolic visuals with ebiten. Every shape
// is a flat vector fill; no image assets are loaded.
package render

import (
	"image/color"
	"strings"

	"github.com/colorwandcastle/colorwand/components"
	cfg "github.com/colorwandcastle/colorwand/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	visualBricks      = "bricks"
	visualBlockPrefix = "block-"
	visualStarPrefix  = "star-"
	visualHeroPrefix  = "player-"

	fadeSeconds = 0.2
)

type sprite struct {
	visual components.VisualID
	x, y   float64
	facing components.Facing
	color  color.RGBA

	anim    *Animation
	twinkle *gween.Tween
	scale   float32
	fade    *gween.Tween
	alpha   float32
}

// Sprites implements components.Renderer. World coordinates are y-up, so
// every draw flips y against the room height.
type Sprites struct {
	next     components.Handle
	sprites  map[components.Handle]*sprite
	order    []components.Handle
	fading   []*sprite
	height   float64
	tileSize float64
}

func NewSprites(worldHeight, tileSize int) *Sprites {
	return &Sprites{
		sprites:  make(map[components.Handle]*sprite),
		height:   float64(worldHeight),
		tileSize: float64(tileSize),
	}
}

func (s *Sprites) Create(visual components.VisualID, x, y float64, facing components.Facing) components.Handle {
	s.next++
	sp := &sprite{x: x, y: y, facing: facing, scale: 1, alpha: 1}
	s.setVisual(sp, visual)
	s.sprites[s.next] = sp
	s.order = append(s.order, s.next)
	return s.next
}

func (s *Sprites) SetPosition(h components.Handle, x, y float64) {
	if sp, ok := s.sprites[h]; ok {
		sp.x, sp.y = x, y
	}
}

func (s *Sprites) SetVisual(h components.Handle, visual components.VisualID, facing components.Facing) {
	sp, ok := s.sprites[h]
	if !ok {
		return
	}
	sp.facing = facing
	if sp.visual != visual {
		s.setVisual(sp, visual)
	} else if sp.anim != nil {
		sp.anim.Restart()
	}
}

// Destroy stops tracking the handle. Blocks fade out before they vanish.
func (s *Sprites) Destroy(h components.Handle) {
	sp, ok := s.sprites[h]
	if !ok {
		return
	}
	delete(s.sprites, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if strings.HasPrefix(string(sp.visual), visualBlockPrefix) {
		sp.fade = gween.New(1, 0, fadeSeconds, ease.OutQuad)
		s.fading = append(s.fading, sp)
	}
}

func (s *Sprites) setVisual(sp *sprite, visual components.VisualID) {
	sp.visual = visual
	sp.anim = nil
	sp.twinkle = nil
	sp.scale = 1

	name := string(visual)
	if def, ok := cfg.VisualAnimations[name]; ok {
		sp.anim = NewAnimation(def)
	}

	switch {
	case name == visualBricks:
		sp.color = cfg.Brick
	case strings.HasPrefix(name, visualBlockPrefix):
		sp.color = parseColor(strings.TrimPrefix(name, visualBlockPrefix))
	case strings.HasPrefix(name, visualStarPrefix):
		sp.color = parseColor(strings.TrimPrefix(name, visualStarPrefix))
		sp.twinkle = gween.New(1, 0.6, cfg.Star.TwinkleSeconds, ease.InOutQuad)
	case strings.HasPrefix(name, visualHeroPrefix):
		sp.color = cfg.Hero
	default:
		log.WithField("visual", name).Warn("Unknown visual")
		sp.color = cfg.Magenta
	}
}

func parseColor(name string) color.RGBA {
	c, err := cfg.ParseColor(name)
	if err != nil {
		log.WithError(err).Warn("Unknown visual color")
		return cfg.Magenta
	}
	return c.RGBA()
}

// Update advances animations and tweens by one tick of dt seconds.
func (s *Sprites) Update(dt float32) {
	for _, sp := range s.sprites {
		if sp.anim != nil {
			sp.anim.Update()
		}
		if sp.twinkle != nil {
			var done bool
			sp.scale, done = sp.twinkle.Update(dt)
			if done {
				// Ping-pong between full size and the dimmed size
				begin, end := float32(1), float32(0.6)
				if sp.scale < 1 {
					begin, end = end, begin
				}
				sp.twinkle = gween.New(begin, end, cfg.Star.TwinkleSeconds, ease.InOutQuad)
			}
		}
	}

	live := s.fading[:0]
	for _, sp := range s.fading {
		var done bool
		sp.alpha, done = sp.fade.Update(dt)
		if !done {
			live = append(live, sp)
		}
	}
	s.fading = live
}

// Draw paints tiles first, then actors, in creation order.
func (s *Sprites) Draw(screen *ebiten.Image) {
	for _, sp := range s.fading {
		s.drawTile(screen, sp)
	}
	for _, h := range s.order {
		sp := s.sprites[h]
		name := string(sp.visual)
		if name == visualBricks || strings.HasPrefix(name, visualBlockPrefix) {
			s.drawTile(screen, sp)
		}
	}
	for _, h := range s.order {
		sp := s.sprites[h]
		name := string(sp.visual)
		switch {
		case strings.HasPrefix(name, visualHeroPrefix):
			s.drawHero(screen, sp)
		case strings.HasPrefix(name, visualStarPrefix):
			s.drawStar(screen, sp)
		}
	}
}

func (s *Sprites) drawTile(screen *ebiten.Image, sp *sprite) {
	size := float32(s.tileSize)
	x := float32(sp.x)
	y := float32(s.height - sp.y - s.tileSize)

	if sp.visual == visualBricks {
		vector.FillRect(screen, x, y, size, size, cfg.Mortar, false)
		half := size / 2
		vector.FillRect(screen, x, y+1, half-1, half-2, sp.color, false)
		vector.FillRect(screen, x+half, y+1, half-1, half-2, sp.color, false)
		vector.FillRect(screen, x+half/2, y+half+1, half-1, half-2, sp.color, false)
		return
	}

	inset := float32(cfg.UI.BlockInset)
	c := sp.color
	c.A = uint8(float32(c.A) * sp.alpha)
	vector.FillRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, c, false)
}

func (s *Sprites) drawHero(screen *ebiten.Image, sp *sprite) {
	b := cfg.Player.Bounds
	left := float32(sp.x) - float32(b.Left)
	top := float32(s.height-sp.y) - float32(b.Up)
	w, h := float32(b.Left+b.Right), float32(b.Up+b.Down)

	bob := float32(0)
	if sp.anim != nil && sp.anim.Frame() == 1 {
		bob = 1
	}
	vector.FillRect(screen, left, top+bob, w, h-bob, cfg.Hero, false)

	// Cloak trails behind the facing direction
	cloakW := w / 3
	cloakX := left
	if sp.facing == components.FacingLeft {
		cloakX = left + w - cloakW
	}
	vector.FillRect(screen, cloakX, top+bob+h/4, cloakW, h*3/4-bob, cfg.HeroCloak, false)

	// Eye on the facing side
	eyeX := left + w - 4
	if sp.facing == components.FacingLeft {
		eyeX = left + 2
	}
	vector.FillRect(screen, eyeX, top+bob+2, 2, 2, cfg.Background, false)
}

func (s *Sprites) drawStar(screen *ebiten.Image, sp *sprite) {
	b := cfg.Star.Bounds
	cx := float32(sp.x)
	cy := float32(s.height - sp.y)
	rw := float32(b.Left+b.Right) * sp.scale
	rh := float32(b.Up+b.Down) * sp.scale

	vector.FillRect(screen, cx-rw/2, cy-1, rw, 2, sp.color, false)
	vector.FillRect(screen, cx-1, cy-rh/2, 2, rh, sp.color, false)
	vector.FillRect(screen, cx-rw/4, cy-rh/4, rw/2, rh/2, cfg.White, false)
}
