package archetypes

import (
	"github.com/colorwandcastle/colorwand/components"
	"github.com/colorwandcastle/colorwand/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.State,
		components.Input,
		components.Object,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Actor,
		components.State,
		components.Object,
	)
	Room = newArchetype(
		components.Room,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Render = newArchetype(
		components.Render,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
