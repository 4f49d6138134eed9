package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // Ticks per frame
}

// VisualAnimations maps a visual name to its frame sequence. Visuals without
// an entry are drawn as a single still frame.
var VisualAnimations = map[string]AnimationDef{
	"player-stand": {First: 0, Last: 0, Step: 1, Speed: 0},
	"player-walk":  {First: 0, Last: 1, Step: 1, Speed: 15}, // 1/8s per frame at 120 TPS
	"player-fly":   {First: 0, Last: 1, Step: 1, Speed: 15},
}
