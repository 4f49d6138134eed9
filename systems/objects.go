package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	"github.com/yohamta/donburi"
)

// SyncObjects copies actor hit boxes into their resolv debug objects. Resolv
// is y-down, so the box top is flipped against the room height.
func SyncObjects(w donburi.World) {
	room := roomOf(w)
	if room == nil {
		return
	}
	height := room.Height()

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Actor) {
			return
		}
		actor := components.Actor.Get(e)
		obj.X = actor.LeftEdge()
		obj.Y = height - actor.Top()
		obj.Update()
	})
}
