package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision body of an entity. X/Y is the top-left
// corner in TMX space.
type ObjectData struct {
	*resolv.Object
}

// Center returns the body center in TMX space.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space of a level.
var Space = donburi.NewComponentType[resolv.Space]()
