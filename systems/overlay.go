package systems

import (
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay toggles the backpack and closes panels on back.
// Movement is frozen while any panel is open.
func UpdateOverlay(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	overlay := GetOrCreateOverlay(ecs)

	switch {
	case GetAction(input, cfg.ActionBackpack).JustPressed:
		switch overlay.Active {
		case components.OverlayNone:
			OpenOverlay(ecs, components.OverlayBackpack, "")
		case components.OverlayBackpack:
			CloseOverlay(ecs)
		}
	case GetAction(input, cfg.ActionBack).JustPressed:
		if overlay.Active != components.OverlayNone {
			CloseOverlay(ecs)
		}
	}
}

// GetOrCreateOverlay returns the singleton Overlay component, creating if needed
func GetOrCreateOverlay(ecs *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Overlay))
	}
	return components.Overlay.Get(entry)
}

func OpenOverlay(ecs *ecs.ECS, id components.OverlayID, shopID string) {
	overlay := GetOrCreateOverlay(ecs)
	overlay.Active = id
	overlay.ShopID = shopID
	SetPlayerFrozen(ecs, true)
}

func CloseOverlay(ecs *ecs.ECS) {
	overlay := GetOrCreateOverlay(ecs)
	if overlay.Active == components.OverlayMarket {
		DismissShops(ecs)
	}
	overlay.Active = components.OverlayNone
	overlay.ShopID = ""
	SetPlayerFrozen(ecs, false)
}
