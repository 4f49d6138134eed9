// Package input reads the keyboard and gamepads through ebiten.
package input

import (
	"github.com/colorwandcastle/colorwand/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding is the set of keys and buttons that hold a control.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every control to its keys and buttons.
var Bindings = map[components.Control]Binding{
	components.ControlUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	components.ControlDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	components.ControlLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	components.ControlRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	components.ControlFire: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
}
