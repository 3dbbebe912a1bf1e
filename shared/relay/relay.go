// Package relay carries HUD notifications between systems of one world.
// Events are queued on publish and delivered when the world's events are
// processed, once per frame.
package relay

import (
	"github.com/automoto/herbclinic/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CoordinatesUpdated is published on every tick the player moves.
type CoordinatesUpdated struct {
	Position messages.Position
}

// PlayerRefreshed is published whenever a new authoritative record is
// applied: position sync, purchase or fetch.
type PlayerRefreshed struct {
	Record messages.PlayerRecord
}

// Notice is a one-line message for the HUD toast area.
type Notice struct {
	Text string
}

var (
	Coordinates = events.NewEventType[CoordinatesUpdated]()
	Refreshed   = events.NewEventType[PlayerRefreshed]()
	Notices     = events.NewEventType[Notice]()
)

func PublishCoordinates(w donburi.World, pos messages.Position) {
	Coordinates.Publish(w, CoordinatesUpdated{Position: pos})
}

func PublishRefresh(w donburi.World, rec messages.PlayerRecord) {
	Refreshed.Publish(w, PlayerRefreshed{Record: rec})
}

func PublishNotice(w donburi.World, text string) {
	Notices.Publish(w, Notice{Text: text})
}

// Process delivers every queued event of w.
func Process(w donburi.World) {
	events.ProcessAllEvents(w)
}
