package messages

// PositionRequest is sent to POST /player/position. Coordinates are
// already rounded to integers.
type PositionRequest struct {
	PlayerID string `json:"playerId"`
	MapID    string `json:"mapId"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// ChangeMapRequest is sent to POST /player/change-map.
type ChangeMapRequest struct {
	PlayerID    string `json:"playerId"`
	TargetMapID string `json:"targetMapId"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

// BuyRequest is sent to POST /market/buy.
type BuyRequest struct {
	PlayerID string `json:"playerId"`
	ItemID   string `json:"itemId"`
	Count    int    `json:"count"`
}

// CreateSaveRequest is sent to POST /player/create-save.
type CreateSaveRequest struct {
	Nickname string `json:"nickname"`
}

// DeleteSaveRequest is sent to POST /player/delete-save.
type DeleteSaveRequest struct {
	PlayerID string `json:"playerId"`
}
