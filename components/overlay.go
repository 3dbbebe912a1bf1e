package components

import "github.com/yohamta/donburi"

// OverlayID names the panel that currently has focus.
type OverlayID int

const (
	OverlayNone OverlayID = iota
	OverlayMarket
	OverlayBackpack
)

// OverlayData stores which panel is open over the world. The world stays
// drawn but movement is paused.
type OverlayData struct {
	Active OverlayID
	ShopID string
}

var Overlay = donburi.NewComponentType[OverlayData]()
