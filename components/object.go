package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's hit box into the resolv debug space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// SpaceOf returns the debug collision space, or nil when the world has none.
func SpaceOf(w donburi.World) *resolv.Space {
	if e, ok := Space.First(w); ok {
		return Space.Get(e)
	}
	return nil
}
