package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a character key to its animation definitions.
// Frames drive the procedural bob and stride of the character sprites.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle: {First: 0, Last: 1, Step: 1, Speed: 30},
		Walk: {First: 0, Last: 3, Step: 1, Speed: 8},
	},
	"npc": {
		Idle: {First: 0, Last: 1, Step: 1, Speed: 40},
	},
}
