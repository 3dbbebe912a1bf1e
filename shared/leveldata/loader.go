package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names understood by the loader.
const (
	GroupWalls  = "Walls"
	GroupDecor  = "Decor"
	GroupNPC    = "NPC"
	GroupExits  = "Exits"
	GroupSpawn  = "PlayerSpawn"
	GroupMarker = "Markers"
)

// LoadMap parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (client) or fstest.MapFS (tests).
func LoadMap(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &MapData{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}
	data.OriginX = float64(data.Width) / 2
	data.OriginY = float64(data.Height) / 2
	data.SpawnX, data.SpawnY = data.OriginX, data.OriginY

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupDecor:
			for _, o := range og.Objects {
				kind := o.Class
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				data.Decor = append(data.Decor, Decor{
					Rect:  Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Kind:  kind,
					Label: o.Properties.GetString("label"),
				})
			}
		case GroupNPC:
			for _, o := range og.Objects {
				data.NPCs = append(data.NPCs, NPCSpawn{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Name:   o.Name,
					ShopID: o.Properties.GetString("shopId"),
				})
			}
		case GroupExits:
			for _, o := range og.Objects {
				target := o.Properties.GetString("targetMapId")
				if target == "" {
					return nil, fmt.Errorf("%s: exit %q has no targetMapId", tmxPath, o.Name)
				}
				data.Exits = append(data.Exits, Exit{
					Rect:        Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Label:       o.Properties.GetString("label"),
					TargetMapID: target,
					TargetX:     o.Properties.GetFloat("targetX"),
					TargetY:     o.Properties.GetFloat("targetY"),
				})
			}
		case GroupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.SpawnX, data.SpawnY = o.X, o.Y
			}
		case GroupMarker:
			for _, o := range og.Objects {
				if o.Name == "Origin" {
					data.OriginX, data.OriginY = o.X, o.Y
				}
			}
		}
	}

	// Stable draw and contact order
	sort.Slice(data.NPCs, func(i, j int) bool { return data.NPCs[i].X < data.NPCs[j].X })

	return data, nil
}

// LoadAllMaps loads every .tmx file in dir, keyed by file stem, plus a sorted
// list of names.
func LoadAllMaps(fsys fs.FS, dir string) (map[string]*MapData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*MapData, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		data, err := LoadMap(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		maps[data.Name] = data
		names = append(names, data.Name)
	}
	sort.Strings(names)
	return maps, names, nil
}
