package systems

import (
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/automoto/herbclinic/shared/leveldata"
	"github.com/automoto/herbclinic/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNPCs tracks contact with shop keepers. Pressing interact while
// touching opens the market; walking away closes it.
func UpdateNPCs(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object
	input := getOrCreateInput(ecs)
	overlay := GetOrCreateOverlay(ecs)
	hud := getHUD(ecs)
	dt := float32(1.0 / float64(ebiten.TPS()))

	interact := GetAction(input, cfg.ActionInteract).JustPressed && overlay.Active == components.OverlayNone
	prompt := ""

	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		npc := components.NPC.Get(e)
		obj := components.Object.Get(e).Object

		if npc.Bob != nil {
			var done bool
			npc.BobY, _, done = npc.Bob.Update(dt)
			if done {
				npc.Bob.Reset()
			}
		}

		near := touching(playerObj, obj)
		open, changed := npc.Trigger.Update(near, interact)
		if changed {
			if open {
				OpenOverlay(ecs, components.OverlayMarket, npc.Trigger.ShopID)
			} else if overlay.Active == components.OverlayMarket && overlay.ShopID == npc.Trigger.ShopID {
				CloseOverlay(ecs)
			}
		}
		if near && !open {
			prompt = hudtext.Talk(npc.Name)
		}
	})

	if hud != nil {
		hud.Prompt = prompt
	}
}

// UpdateExits marks the doors the player is standing on. Entered is only
// true on the first frame of contact so a map change is requested once.
func UpdateExits(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		exit := components.Exit.Get(e)
		near := overlaps(playerObj, components.Object.Get(e).Object, 0, 0, 0)
		exit.Entered = near && !exit.Touching
		exit.Touching = near
	})
}

// EnteredExit returns the door the player stepped onto this frame.
func EnteredExit(ecs *ecs.ECS) (leveldata.Exit, bool) {
	var found *components.ExitData
	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		if exit := components.Exit.Get(e); exit.Entered && found == nil {
			found = exit
		}
	})
	if found == nil {
		return leveldata.Exit{}, false
	}
	return found.Exit, true
}

// DismissShops closes every shop trigger, used when the market panel is
// closed from the UI while the player still stands at the counter.
func DismissShops(ecs *ecs.ECS) {
	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		components.NPC.Get(e).Trigger.Dismiss()
	})
}
