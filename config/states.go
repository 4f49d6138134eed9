package config

// StateID identifies a player locomotion state or a star mode.
type StateID int

const (
	StateNone StateID = -1

	// Player locomotion states
	Flying StateID = iota
	Standing
	Walking

	// Star modes
	StarFollowing
	StarShooting
)

func (s StateID) String() string {
	switch s {
	case StateNone:
		return "none"
	case Flying:
		return "flying"
	case Standing:
		return "standing"
	case Walking:
		return "walking"
	case StarFollowing:
		return "following"
	case StarShooting:
		return "shooting"
	}
	return "unknown"
}

// StateToVisual maps a player state to the symbolic visual the renderer shows.
var StateToVisual = map[StateID]string{
	Flying:   "player-fly",
	Standing: "player-stand",
	Walking:  "player-walk",
}
