package config

import (
	"image/color"
	"time"

	"github.com/automoto/herbclinic/shared/motion"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in world units per second
	MoveSpeed float64
	Policy    motion.Policy

	// Dimensions
	Width  float64
	Height float64
}

// SyncConfig contains position upload configuration
type SyncConfig struct {
	Interval time.Duration
	Enabled  bool
}

// NetworkConfig contains backend connection settings
type NetworkConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// MapsConfig maps backend map ids to display names and TMX files
type MapsConfig struct {
	Start        string
	DisplayNames map[string]string
	Files        map[string]string
	Dir          string
}

// HerbConfig is one entry of the market catalogue
type HerbConfig struct {
	ID     string
	Name   string
	Price  int
	Season string
}

// MarketConfig contains shop and rumour settings
type MarketConfig struct {
	DefaultShopID string
	Herbs         []HerbConfig
	RumourChance  float64
	Rumours       []string
}

// SavesConfig contains save-slot limits
type SavesConfig struct {
	MaxSaves int
}

// UIConfig contains HUD and panel colors and sizes
type UIConfig struct {
	HUDFontSize     float64
	HUDTitleSize    float64
	HUDMargin       float64
	HUDLineHeight   float64
	HUDPanelColor   color.RGBA
	HUDTextColor    color.RGBA
	HUDAccentColor  color.RGBA
	PromptColor     color.RGBA
	PanelColor      color.RGBA
	BackgroundColor color.RGBA
	DialogFadeSecs  float32
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// LogConfig contains log file settings
type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Debug      bool
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Sync SyncConfig
var Network NetworkConfig
var Maps MapsConfig
var Market MarketConfig
var Saves SavesConfig
var UI UIConfig
var Camera CameraConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cream        = color.RGBA{R: 245, G: 235, B: 210, A: 255}
	Gold         = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	Jade         = color.RGBA{R: 90, G: 170, B: 130, A: 255}
	Cinnabar     = color.RGBA{R: 200, G: 60, B: 50, A: 255}
	Wood         = color.RGBA{R: 120, G: 80, B: 50, A: 255}
	DarkWood     = color.RGBA{R: 70, G: 45, B: 30, A: 255}
	Floor        = color.RGBA{R: 196, G: 170, B: 130, A: 255}
	Ink          = color.RGBA{R: 30, G: 25, B: 20, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "百草医馆",
	}

	Player = PlayerConfig{
		MoveSpeed: 300,
		Policy:    motion.PolicyLastKeyWins,
		Width:     28,
		Height:    36,
	}

	Sync = SyncConfig{
		Interval: 2 * time.Second,
		Enabled:  true,
	}

	Network = NetworkConfig{
		BaseURL: "http://8.148.82.231:3000",
		Timeout: 5 * time.Second,
	}

	Maps = MapsConfig{
		Start: "clinic_interior",
		DisplayNames: map[string]string{
			"clinic_interior": "医馆内堂",
			"scene_market":    "集市",
			"scene_clinic":    "医馆",
		},
		Files: map[string]string{
			"clinic_interior": "clinic_interior.tmx",
			"scene_clinic":    "clinic_interior.tmx",
			"scene_market":    "scene_market.tmx",
		},
		Dir: "maps",
	}

	Market = MarketConfig{
		DefaultShopID: "village_market",
		Herbs: []HerbConfig{
			{ID: "item_licorice", Name: "甘草", Price: 10, Season: "四季"},
			{ID: "item_ginseng", Name: "人参", Price: 100, Season: "秋季"},
			{ID: "item_goji", Name: "枸杞", Price: 25, Season: "夏秋"},
		},
		RumourChance: 0.3,
		Rumours: []string{
			"听说甘草最近要涨价了！",
			"有个神秘小贩在兜售新药方...",
			"路边有个病人晕倒了，是否救治？",
		},
	}

	Saves = SavesConfig{
		MaxSaves: 6,
	}

	UI = UIConfig{
		HUDFontSize:     14,
		HUDTitleSize:    18,
		HUDMargin:       12,
		HUDLineHeight:   20,
		HUDPanelColor:   color.RGBA{R: 20, G: 15, B: 10, A: 170},
		HUDTextColor:    Cream,
		HUDAccentColor:  Gold,
		PromptColor:     White,
		PanelColor:      color.RGBA{R: 50, G: 35, B: 25, A: 235},
		BackgroundColor: color.RGBA{R: 28, G: 22, B: 18, A: 255},
		DialogFadeSecs:  0.25,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Log = LogConfig{
		File:       "herbclinic.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}

	Debug = DebugConfig{
		DrawColliders: false,
	}
}
