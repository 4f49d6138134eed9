package systems

import (
	"github.com/colorwandcastle/colorwand/components"
	"github.com/colorwandcastle/colorwand/systems/factory"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// SweepBlocks removes the blocks queued this frame. When the front column
// runs out of blocks, the next column with blocks becomes the front.
func SweepBlocks(w donburi.World) {
	room := roomOf(w)
	if room == nil || len(room.Pending) == 0 {
		return
	}

	r := components.RendererOf(w)
	space := components.SpaceOf(w)
	for _, t := range room.Pending {
		b, ok := room.Blocks[t]
		if !ok {
			continue
		}
		delete(room.Blocks, t)
		r.Destroy(b.Handle)
		if space != nil && b.Object != nil {
			space.Remove(b.Object)
		}
		if t.Col == room.FrontCol {
			room.DecColor(b.Color)
		}
		log.WithFields(log.Fields{
			"row":   t.Row,
			"col":   t.Col,
			"color": b.Color,
		}).Debug("Block consumed")
	}
	room.Pending = room.Pending[:0]

	if len(room.FrontColors) > 0 {
		return
	}
	if len(room.Blocks) == 0 {
		log.Info("Room cleared")
		return
	}
	front := room.Cols
	for t := range room.Blocks {
		if t.Col < front {
			front = t.Col
		}
	}
	room.FrontCol = front
	factory.RebuildFrontColors(room)
	log.WithField("col", front).Debug("Front column advanced")
}
