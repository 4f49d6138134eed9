package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Star   = donburi.NewTag().SetName("Star")
)

// Resolv tags for the debug collision space
const (
	ResolvWall   = "wall"
	ResolvBlock  = "block"
	ResolvPlayer = "Player"
	ResolvStar   = "Star"
)
