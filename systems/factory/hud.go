package factory

import (
	"github.com/automoto/herbclinic/archetypes"
	"github.com/automoto/herbclinic/components"
	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/session"
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHUD spawns the HUD singleton showing the loading placeholders.
func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{Stats: hudtext.LoadingStats()})
	return hud
}

func CreateOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{})
	return overlay
}

// CreateSync links the world to the position uploader.
func CreateSync(ecs *ecs.ECS, engine *network.PositionSync, sess *session.Session, mapID string) *donburi.Entry {
	entry := archetypes.Sync.Spawn(ecs)
	components.Sync.Set(entry, &components.SyncData{Engine: engine, Session: sess, MapID: mapID})
	return entry
}
