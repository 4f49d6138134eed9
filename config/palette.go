package config

import (
	"errors"
	"fmt"
	"image/color"
)

// Color is one entry of the fixed block and star palette.
type Color int

const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorCount // Must be last - used for array sizing
)

// ErrInvalidColor is returned when a color is not part of the palette.
var ErrInvalidColor = errors.New("color not in palette")

// Palette lists every color in palette order.
var Palette = [ColorCount]Color{
	ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple,
}

var colorNames = [ColorCount]string{
	"red", "orange", "yellow", "green", "blue", "purple",
}

// ColorRGBA maps palette colors to their on-screen fill.
var ColorRGBA = [ColorCount]color.RGBA{
	{R: 224, G: 40, B: 40, A: 255},
	{R: 240, G: 140, B: 20, A: 255},
	{R: 240, G: 220, B: 40, A: 255},
	{R: 40, G: 190, B: 60, A: 255},
	{R: 40, G: 100, B: 230, A: 255},
	{R: 150, G: 50, B: 210, A: 255},
}

func (c Color) String() string {
	if c.Validate() != nil {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Validate reports whether c is a palette color.
func (c Color) Validate() error {
	if c < 0 || c >= ColorCount {
		return fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
	}
	return nil
}

// RGBA returns the fill color, or magenta for an invalid color.
func (c Color) RGBA() color.RGBA {
	if c.Validate() != nil {
		return Magenta
	}
	return ColorRGBA[c]
}

// ParseColor converts a palette name such as "red" into a Color.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, name)
}

// PalettePrefix returns the first n palette colors, clamped to the palette size.
func PalettePrefix(n int) []Color {
	if n < 1 {
		n = 1
	}
	if n > int(ColorCount) {
		n = int(ColorCount)
	}
	return Palette[:n]
}

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Background = color.RGBA{R: 30, G: 24, B: 48, A: 255}
	Brick      = color.RGBA{R: 120, G: 70, B: 50, A: 255}
	Mortar     = color.RGBA{R: 80, G: 50, B: 40, A: 255}
	Hero       = color.RGBA{R: 250, G: 200, B: 170, A: 255}
	HeroCloak  = color.RGBA{R: 90, G: 60, B: 160, A: 255}
)
