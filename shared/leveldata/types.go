// Package leveldata parses the TMX maps of the clinic and the market.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
//
// TMX space is y-down with the origin at the top-left corner. World space,
// the one the backend stores, is y-up with the origin at the map's Origin
// marker (the map center when the marker is missing).
package leveldata

// Rect is an axis-aligned rectangle in TMX space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Decor is a non-solid drawable area such as a rug or a herb cabinet front.
type Decor struct {
	Rect
	Kind  string
	Label string
}

// NPCSpawn is a shop keeper. ShopID defaults to the market id configured by
// the caller when the TMX object has none.
type NPCSpawn struct {
	Rect
	Name   string
	ShopID string
}

// Exit is a door that moves the player to another map.
type Exit struct {
	Rect
	Label       string
	TargetMapID string
	TargetX     float64
	TargetY     float64
}

// MapData holds everything the client needs from one TMX file.
type MapData struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	OriginX float64
	OriginY float64

	Walls  []Rect
	Decor  []Decor
	NPCs   []NPCSpawn
	Exits  []Exit
	SpawnX float64
	SpawnY float64
}

// ToWorld converts a TMX point to world coordinates.
func (m *MapData) ToWorld(x, y float64) (float64, float64) {
	return x - m.OriginX, m.OriginY - y
}

// ToMap converts a world point to TMX coordinates.
func (m *MapData) ToMap(x, y float64) (float64, float64) {
	return x + m.OriginX, m.OriginY - y
}

// Contains reports whether the TMX point lies inside the map bounds.
func (m *MapData) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= float64(m.Width) && y <= float64(m.Height)
}
