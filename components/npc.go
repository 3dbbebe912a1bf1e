package components

import (
	"github.com/automoto/herbclinic/market"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type NPCData struct {
	Name    string
	Trigger market.ShopTrigger
	// Bob animates the interaction prompt above the head
	Bob    *gween.Sequence
	BobY   float32
	Facing float64
}

var NPC = donburi.NewComponentType[NPCData]()
