package factory

import (
	"github.com/automoto/herbclinic/archetypes"
	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/market"
	"github.com/automoto/herbclinic/shared/leveldata"
	"github.com/automoto/herbclinic/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNPC spawns a shop keeper. NPCs are solid so the player stops at the
// counter instead of walking through.
func CreateNPC(ecs *ecs.ECS, spawn leveldata.NPCSpawn) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvSolid, tags.ResolvNPC)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.W, spawn.H))
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})

	shopID := spawn.ShopID
	if shopID == "" {
		shopID = cfg.Market.DefaultShopID
	}

	// The prompt above the head bobs up and down
	bob := gween.NewSequence()
	bob.Add(
		gween.New(0, -4, 0.6, ease.InOutSine),
		gween.New(-4, 0, 0.6, ease.InOutSine),
	)

	components.NPC.SetValue(npc, components.NPCData{
		Name:    spawn.Name,
		Trigger: market.ShopTrigger{ShopID: shopID},
		Bob:     bob,
	})
	components.Animation.Set(npc, GenerateAnimations("npc", assets.NPCPalette, int(spawn.W), int(spawn.H)))

	addToSpace(ecs, obj)
	return npc
}
