package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	NPC    = donburi.NewTag().SetName("NPC")
	Exit   = donburi.NewTag().SetName("Exit")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvNPC    = "npc"
	ResolvExit   = "exit"
)
