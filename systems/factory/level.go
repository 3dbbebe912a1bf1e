package factory

import (
	"github.com/automoto/herbclinic/archetypes"
	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var loader = assets.NewLevelLoader()

// CreateLevel loads the map behind a backend map id.
func CreateLevel(ecs *ecs.ECS, mapID string) (*donburi.Entry, error) {
	level, err := loader.LoadLevel(mapID)
	if err != nil {
		return nil, err
	}
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})
	return entry, nil
}
