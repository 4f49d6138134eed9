package input

import (
	"github.com/colorwandcastle/colorwand/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard is the live input source. Despite the name it also reads every
// connected standard-layout gamepad.
type Keyboard struct {
	gamepadIDs []ebiten.GamepadID
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) IsHeld(c components.Control) bool {
	binding, ok := Bindings[c]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}

	// Reuse the slice to avoid allocating every frame
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])
	for _, id := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}
