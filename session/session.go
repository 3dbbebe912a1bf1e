// Package session holds the client's view of the selected save: the player
// id, the authoritative record and the item definition cache. One Session is
// created at startup and passed to the scenes that need it.
package session

import (
	"sync"

	"github.com/automoto/herbclinic/shared/messages"
)

// Session is safe for concurrent use; requests complete on their own
// goroutines while the game loop reads.
type Session struct {
	mu sync.RWMutex

	playerID    string
	record      *messages.PlayerRecord
	nextTicket  uint64
	lastApplied uint64

	items map[string]messages.ItemDef
}

func New() *Session {
	return &Session{items: make(map[string]messages.ItemDef)}
}

func (s *Session) PlayerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerID
}

// SetPlayerID selects a save. Switching saves drops the cached record.
func (s *Session) SetPlayerID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.playerID {
		s.record = nil
	}
	s.playerID = id
}

// Ticket issues the sequence number for a request that will overwrite the
// record. Tickets are handed out in dispatch order.
func (s *Session) Ticket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTicket++
	return s.nextTicket
}

// Apply stores rec if ticket is newer than the last applied one. Out of order
// responses are rejected and false is returned.
func (s *Session) Apply(ticket uint64, rec *messages.PlayerRecord) bool {
	if rec == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket <= s.lastApplied {
		return false
	}
	if s.playerID != "" && rec.ID != "" && rec.ID != s.playerID {
		return false
	}
	s.lastApplied = ticket
	cp := *rec
	cp.Inventory = append([]messages.InventoryEntry(nil), rec.Inventory...)
	s.record = &cp
	return true
}

// Record returns a copy of the authoritative record, or nil before the first
// fetch.
func (s *Session) Record() *messages.PlayerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return nil
	}
	cp := *s.record
	cp.Inventory = append([]messages.InventoryEntry(nil), s.record.Inventory...)
	return &cp
}

// Item returns a cached item definition.
func (s *Session) Item(id string) (messages.ItemDef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	return it, ok
}

func (s *Session) CacheItem(it messages.ItemDef) {
	if it.ID == "" {
		return
	}
	s.mu.Lock()
	s.items[it.ID] = it
	s.mu.Unlock()
}

// CacheItemAs stores a definition under id, used when the backend reply
// omits its own id.
func (s *Session) CacheItemAs(id string, it messages.ItemDef) {
	if it.ID == "" {
		it.ID = id
	}
	s.mu.Lock()
	s.items[id] = it
	s.mu.Unlock()
}
