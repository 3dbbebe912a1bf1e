package factory

import (
	"fmt"

	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/assets/animations"
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/motion"
)

var facings = []motion.Direction{motion.DirUp, motion.DirDown, motion.DirLeft, motion.DirRight}

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "npc") which maps to a set of animation definitions in config.
// Every facing gets its own idle and walk clip.
func GenerateAnimations(key string, pal assets.Palette, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	clips := make(map[motion.Clip]*animations.Animation)
	for _, facing := range facings {
		if def, ok := defs[cfg.Idle]; ok {
			clips[motion.Clip{Facing: facing}] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		}
		if def, ok := defs[cfg.Walk]; ok {
			clips[motion.Clip{Facing: facing, Walking: true}] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		}
	}

	// Paint and cache the frames up front
	for state, def := range defs {
		for i := def.First; i <= def.Last; i++ {
			_ = assets.GetFrame(key, state, pal, i, frameWidth, frameHeight)
		}
	}

	player := animations.NewPlayer(clips)
	player.Play(motion.Clip{Facing: motion.DirDown})

	return &components.AnimationData{
		Clips:       player,
		SheetKey:    key,
		Palette:     pal,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
	}
}
