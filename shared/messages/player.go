// Package messages holds the JSON bodies exchanged with the game backend.
// Shared by the client and the dev backend; no ebiten imports.
package messages

// Position is a player's location on a map.
type Position struct {
	MapID string  `json:"mapId"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// InventoryEntry is one backpack stack.
type InventoryEntry struct {
	ItemID string `json:"itemId"`
	Count  int    `json:"count"`
}

// PlayerRecord is the canonical save as the backend returns it.
type PlayerRecord struct {
	ID           string           `json:"_id"`
	Nickname     string           `json:"nickname"`
	Gold         int              `json:"gold"`
	Level        int              `json:"level"`
	Reputation   int              `json:"reputation"`
	Inventory    []InventoryEntry `json:"inventory"`
	LastPosition Position         `json:"lastPosition"`
}

// ItemDef is the static definition of an item.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconRes     string `json:"iconRes,omitempty"`
	Price       int    `json:"price,omitempty"`
}

// Status is the generic reply of mutating endpoints.
type Status struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
