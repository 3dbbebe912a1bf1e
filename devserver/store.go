package devserver

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/herbclinic/shared/messages"
)

var (
	ErrNotFound      = errors.New("player not found")
	ErrUnknownItem   = errors.New("item not found")
	ErrSlotsFull     = errors.New("存档已满")
	ErrNoNickname    = errors.New("nickname required")
	ErrBadCount      = errors.New("count must be positive")
	ErrNotEnoughGold = errors.New("金币不足")
)

// Defaults is what a freshly created save starts with.
type Defaults struct {
	Gold       int
	Level      int
	Reputation int
	Position   messages.Position
}

// Store is an in-memory set of saves and item definitions. Saves keep their
// creation order.
type Store struct {
	mu       sync.RWMutex
	players  map[string]*messages.PlayerRecord
	order    []string
	items    map[string]messages.ItemDef
	itemList []messages.ItemDef
	maxSaves int
	defaults Defaults
}

func NewStore(items []messages.ItemDef, maxSaves int, defaults Defaults) *Store {
	s := &Store{
		players:  make(map[string]*messages.PlayerRecord),
		items:    make(map[string]messages.ItemDef, len(items)),
		itemList: append([]messages.ItemDef(nil), items...),
		maxSaves: maxSaves,
		defaults: defaults,
	}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *Store) List() []messages.PlayerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]messages.PlayerRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, clone(s.players[id]))
	}
	return result
}

func (s *Store) Create(nickname string) (messages.PlayerRecord, error) {
	if nickname == "" {
		return messages.PlayerRecord{}, ErrNoNickname
	}

	b := make([]byte, 12)
	_, _ = rand.Read(b)
	id := fmt.Sprintf("%x", b)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSaves > 0 && len(s.order) >= s.maxSaves {
		return messages.PlayerRecord{}, ErrSlotsFull
	}
	rec := &messages.PlayerRecord{
		ID:           id,
		Nickname:     nickname,
		Gold:         s.defaults.Gold,
		Level:        s.defaults.Level,
		Reputation:   s.defaults.Reputation,
		Inventory:    []messages.InventoryEntry{},
		LastPosition: s.defaults.Position,
	}
	s.players[id] = rec
	s.order = append(s.order, id)
	return clone(rec), nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return ErrNotFound
	}
	delete(s.players, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Get(id string) (messages.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[id]
	if !ok {
		return messages.PlayerRecord{}, ErrNotFound
	}
	return clone(rec), nil
}

// Move records the player's last position and returns the updated save.
func (s *Store) Move(id string, pos messages.Position) (messages.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.players[id]
	if !ok {
		return messages.PlayerRecord{}, ErrNotFound
	}
	if pos.MapID == "" {
		pos.MapID = rec.LastPosition.MapID
	}
	rec.LastPosition = pos
	return clone(rec), nil
}

// Buy charges price*count and adds the stack to the inventory.
func (s *Store) Buy(id, itemID string, count int) (messages.PlayerRecord, error) {
	if count <= 0 {
		return messages.PlayerRecord{}, ErrBadCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.players[id]
	if !ok {
		return messages.PlayerRecord{}, ErrNotFound
	}
	item, ok := s.items[itemID]
	if !ok {
		return messages.PlayerRecord{}, ErrUnknownItem
	}
	cost := item.Price * count
	if cost > rec.Gold {
		return messages.PlayerRecord{}, ErrNotEnoughGold
	}
	rec.Gold -= cost

	for i := range rec.Inventory {
		if rec.Inventory[i].ItemID == itemID {
			rec.Inventory[i].Count += count
			return clone(rec), nil
		}
	}
	rec.Inventory = append(rec.Inventory, messages.InventoryEntry{ItemID: itemID, Count: count})
	return clone(rec), nil
}

func (s *Store) Items() []messages.ItemDef {
	return append([]messages.ItemDef(nil), s.itemList...)
}

func (s *Store) Item(id string) (messages.ItemDef, error) {
	it, ok := s.items[id]
	if !ok {
		return messages.ItemDef{}, ErrUnknownItem
	}
	return it, nil
}

func clone(rec *messages.PlayerRecord) messages.PlayerRecord {
	c := *rec
	c.Inventory = append([]messages.InventoryEntry{}, rec.Inventory...)
	return c
}
