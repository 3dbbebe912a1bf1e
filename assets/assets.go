package assets

import (
	"embed"
	"fmt"
	"image/color"
	"path"
	"sync"

	"github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// Level is a loaded map plus its pre-rendered background.
type Level struct {
	*leveldata.MapData
	MapID      string
	Background *ebiten.Image
}

type LevelLoader struct {
	mu    sync.Mutex
	cache map[string]*leveldata.MapData
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{cache: make(map[string]*leveldata.MapData)}
}

// LoadLevel resolves a backend map id to its TMX file and renders the
// background. Map data is cached; the background image is built per call
// since scenes deallocate it on exit.
func (l *LevelLoader) LoadLevel(mapID string) (*Level, error) {
	file, ok := config.Maps.Files[mapID]
	if !ok {
		return nil, fmt.Errorf("unknown map id %q", mapID)
	}

	l.mu.Lock()
	data, ok := l.cache[file]
	l.mu.Unlock()
	if !ok {
		var err error
		data, err = leveldata.LoadMap(mapFS, path.Join(config.Maps.Dir, file))
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[file] = data
		l.mu.Unlock()
	}

	return &Level{
		MapData:    data,
		MapID:      mapID,
		Background: renderBackground(data),
	}, nil
}

var decorColors = map[string]color.RGBA{
	"rug":     {R: 150, G: 50, B: 40, A: 255},
	"cabinet": config.DarkWood,
	"counter": config.Wood,
	"bed":     {R: 210, G: 200, B: 180, A: 255},
	"table":   config.Wood,
	"road":    {R: 170, G: 160, B: 140, A: 255},
	"stall":   {R: 160, G: 110, B: 60, A: 255},
	"well":    {R: 110, G: 110, B: 120, A: 255},
}

func renderBackground(m *leveldata.MapData) *ebiten.Image {
	bg := ebiten.NewImage(m.Width, m.Height)
	bg.Fill(config.Floor)

	// Floor boards
	for y := m.TileHeight; y < m.Height; y += m.TileHeight * 2 {
		vector.StrokeLine(bg, 0, float32(y), float32(m.Width), float32(y), 1, color.RGBA{A: 30}, false)
	}

	for _, d := range m.Decor {
		c, ok := decorColors[d.Kind]
		if !ok {
			c = config.Wood
		}
		vector.DrawFilledRect(bg, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), c, false)
		vector.StrokeRect(bg, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), 2, config.Ink, false)
	}

	for _, w := range m.Walls {
		if covered(w, m.Decor) {
			continue
		}
		vector.DrawFilledRect(bg, float32(w.X), float32(w.Y), float32(w.W), float32(w.H), config.DarkWood, false)
	}

	for _, e := range m.Exits {
		vector.DrawFilledRect(bg, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), config.Jade, false)
	}
	return bg
}

// covered reports whether a wall is drawn by a decor rectangle already.
func covered(w leveldata.Rect, decor []leveldata.Decor) bool {
	for _, d := range decor {
		if d.Rect == w {
			return true
		}
	}
	return false
}
