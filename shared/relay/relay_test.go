package relay

import (
	"testing"

	"github.com/automoto/herbclinic/shared/messages"
	"github.com/yohamta/donburi"
)

func TestEventsScopedToWorld(t *testing.T) {
	a := donburi.NewWorld()
	b := donburi.NewWorld()

	var gotA, gotB []messages.Position
	Coordinates.Subscribe(a, func(_ donburi.World, e CoordinatesUpdated) {
		gotA = append(gotA, e.Position)
	})
	Coordinates.Subscribe(b, func(_ donburi.World, e CoordinatesUpdated) {
		gotB = append(gotB, e.Position)
	})

	PublishCoordinates(a, messages.Position{MapID: "clinic_interior", X: 1, Y: 2})
	if len(gotA) != 0 {
		t.Fatal("events must be queued until processed")
	}
	Process(a)
	Process(b)

	if len(gotA) != 1 || gotA[0].X != 1 || gotA[0].Y != 2 {
		t.Fatalf("world a got %+v", gotA)
	}
	if len(gotB) != 0 {
		t.Fatalf("world b must not see events of world a, got %+v", gotB)
	}
}

func TestRefreshCarriesRecord(t *testing.T) {
	w := donburi.NewWorld()
	var got *messages.PlayerRecord
	Refreshed.Subscribe(w, func(_ donburi.World, e PlayerRefreshed) {
		rec := e.Record
		got = &rec
	})

	PublishRefresh(w, messages.PlayerRecord{ID: "p1", Gold: 90})
	Process(w)

	if got == nil || got.ID != "p1" || got.Gold != 90 {
		t.Fatalf("unexpected refresh %+v", got)
	}
}
