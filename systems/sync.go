package systems

import (
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/relay"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSync advances the position upload timer and applies finished
// uploads. A record is only applied when it answers a newer request than
// the one already shown, then the HUD is told to refresh.
func UpdateSync(ecs *ecs.ECS) {
	entry, ok := components.Sync.First(ecs.World)
	if !ok {
		return
	}
	s := components.Sync.Get(entry)
	if s.Engine == nil || s.Session == nil {
		return
	}

	if cfg.Sync.Enabled {
		if pos, ok := PlayerPosition(ecs); ok {
			s.Engine.Tick(1.0/float64(ebiten.TPS()), s.Session.PlayerID(), pos)
		}
	}

	for _, result := range s.Engine.Drain() {
		if !s.Session.Apply(result.Seq, result.Record) {
			continue
		}
		s.Applied++
		if rec := s.Session.Record(); rec != nil {
			relay.PublishRefresh(ecs.World, *rec)
		}
	}
}
