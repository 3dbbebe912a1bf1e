package components

import (
	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/session"
	"github.com/yohamta/donburi"
)

// SyncData is the singleton linking a world to the position uploader and
// the session it feeds.
type SyncData struct {
	Engine  *network.PositionSync
	Session *session.Session
	MapID   string
	Applied int
}

var Sync = donburi.NewComponentType[SyncData]()
