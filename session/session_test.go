package session

import (
	"sync"
	"testing"

	"github.com/automoto/herbclinic/shared/messages"
)

func rec(id string, x float64) *messages.PlayerRecord {
	return &messages.PlayerRecord{ID: id, LastPosition: messages.Position{MapID: "clinic_interior", X: x}}
}

func TestApplyRejectsStaleResponses(t *testing.T) {
	s := New()
	s.SetPlayerID("p1")

	first := s.Ticket()
	second := s.Ticket()

	if !s.Apply(second, rec("p1", 20)) {
		t.Fatal("expected newer response to apply")
	}
	if s.Apply(first, rec("p1", 10)) {
		t.Fatal("expected older response to be rejected")
	}
	if got := s.Record().LastPosition.X; got != 20 {
		t.Fatalf("expected x=20 to survive, got %v", got)
	}
}

func TestApplyRejectsOtherPlayersRecord(t *testing.T) {
	s := New()
	s.SetPlayerID("p1")
	if s.Apply(s.Ticket(), rec("p2", 1)) {
		t.Fatal("record for another save must not apply")
	}
	if s.Record() != nil {
		t.Fatal("expected no record")
	}
}

func TestSwitchingSaveClearsRecord(t *testing.T) {
	s := New()
	s.SetPlayerID("p1")
	s.Apply(s.Ticket(), rec("p1", 1))
	s.SetPlayerID("p2")
	if s.Record() != nil {
		t.Fatal("expected record cleared on save switch")
	}
}

func TestRecordIsACopy(t *testing.T) {
	s := New()
	r := rec("p1", 1)
	r.Inventory = []messages.InventoryEntry{{ItemID: "item_goji", Count: 2}}
	s.Apply(s.Ticket(), r)

	got := s.Record()
	got.Inventory[0].Count = 99
	got.Gold = 1000
	if again := s.Record(); again.Inventory[0].Count != 2 || again.Gold != 0 {
		t.Fatalf("session record mutated through copy: %+v", again)
	}
}

func TestTicketsUniqueUnderConcurrency(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	seen := make(chan uint64, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- s.Ticket()
		}()
	}
	wg.Wait()
	close(seen)

	uniq := map[uint64]bool{}
	for v := range seen {
		uniq[v] = true
	}
	if len(uniq) != 100 {
		t.Fatalf("expected 100 unique tickets, got %d", len(uniq))
	}
}

func TestItemCache(t *testing.T) {
	s := New()
	if _, ok := s.Item("item_goji"); ok {
		t.Fatal("expected empty cache")
	}
	s.CacheItemAs("item_goji", messages.ItemDef{Name: "枸杞"})
	it, ok := s.Item("item_goji")
	if !ok || it.Name != "枸杞" || it.ID != "item_goji" {
		t.Fatalf("unexpected cached item %+v", it)
	}
}

func TestInitialFetchThenUploadBothApply(t *testing.T) {
	s := New()
	s.SetPlayerID("p1")

	// Uploads wait for the record fetch, so the fetch always answers first.
	fetch := s.Ticket()
	if !s.Apply(fetch, rec("p1", 40)) {
		t.Fatal("expected initial fetch to apply")
	}
	upload := s.Ticket()
	if !s.Apply(upload, rec("p1", 41)) {
		t.Fatal("expected upload after the fetch to apply")
	}
	if got := s.Record().LastPosition.X; got != 41 {
		t.Fatalf("expected x=41, got %v", got)
	}
}
