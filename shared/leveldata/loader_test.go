package leveldata

import (
	"math"
	"testing"
	"testing/fstest"
)

const clinicTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="6" nextobjectid="9">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
  <object id="2" x="0" y="240" width="320" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="NPC">
  <object id="3" name="掌柜" x="200" y="64" width="28" height="36">
   <properties>
    <property name="shopId" value="village_market"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Exits">
  <object id="4" name="door" x="140" y="224" width="40" height="16">
   <properties>
    <property name="label" value="集市"/>
    <property name="targetMapId" value="scene_market"/>
    <property type="float" name="targetX" value="0"/>
    <property type="float" name="targetY" value="-100"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="5" x="160" y="128">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Markers">
  <object id="6" name="Origin" x="150" y="130">
   <point/>
  </object>
 </objectgroup>
</map>
`

const bareTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="2" tilewidth="16" tileheight="16" infinite="0">
</map>
`

const badExitTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="2" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Exits">
  <object id="1" name="nowhere" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestLoadMap(t *testing.T) {
	fsys := fstest.MapFS{"maps/clinic_interior.tmx": {Data: []byte(clinicTMX)}}

	m, err := LoadMap(fsys, "maps/clinic_interior.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "clinic_interior" || m.Width != 320 || m.Height != 256 {
		t.Fatalf("unexpected header %+v", m)
	}
	if len(m.Walls) != 2 {
		t.Fatalf("expected 2 walls, got %d", len(m.Walls))
	}
	if len(m.NPCs) != 1 || m.NPCs[0].ShopID != "village_market" || m.NPCs[0].Name != "掌柜" {
		t.Fatalf("unexpected npcs %+v", m.NPCs)
	}
	if len(m.Exits) != 1 || m.Exits[0].TargetMapID != "scene_market" || m.Exits[0].TargetY != -100 {
		t.Fatalf("unexpected exits %+v", m.Exits)
	}
	if m.SpawnX != 160 || m.SpawnY != 128 {
		t.Fatalf("unexpected spawn %v,%v", m.SpawnX, m.SpawnY)
	}
	if m.OriginX != 150 || m.OriginY != 130 {
		t.Fatalf("unexpected origin %v,%v", m.OriginX, m.OriginY)
	}
}

func TestWorldConversionIsYUp(t *testing.T) {
	m := &MapData{OriginX: 100, OriginY: 100}

	x, y := m.ToWorld(110, 90)
	if x != 10 || y != 10 {
		t.Fatalf("ToWorld = %v,%v; want 10,10", x, y)
	}
	mx, my := m.ToMap(10.7, -3.2)
	if math.Abs(mx-110.7) > 1e-9 || math.Abs(my-103.2) > 1e-9 {
		t.Fatalf("ToMap = %v,%v", mx, my)
	}
	if bx, by := m.ToWorld(m.ToMap(42, -17)); bx != 42 || by != -17 {
		t.Fatalf("round trip = %v,%v", bx, by)
	}
}

func TestLoadMapDefaultsToCenter(t *testing.T) {
	fsys := fstest.MapFS{"maps/bare.tmx": {Data: []byte(bareTMX)}}
	m, err := LoadMap(fsys, "maps/bare.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if m.OriginX != 32 || m.OriginY != 16 || m.SpawnX != 32 || m.SpawnY != 16 {
		t.Fatalf("expected centered origin and spawn, got %+v", m)
	}
}

func TestLoadMapRejectsExitWithoutTarget(t *testing.T) {
	fsys := fstest.MapFS{"maps/bad.tmx": {Data: []byte(badExitTMX)}}
	if _, err := LoadMap(fsys, "maps/bad.tmx"); err == nil {
		t.Fatal("expected error for exit without targetMapId")
	}
}

func TestLoadAllMaps(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/clinic_interior.tmx": {Data: []byte(clinicTMX)},
		"maps/bare.tmx":            {Data: []byte(bareTMX)},
	}
	maps, names, err := LoadAllMaps(fsys, "maps")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "bare" || names[1] != "clinic_interior" {
		t.Fatalf("unexpected names %v", names)
	}
	if maps["clinic_interior"] == nil {
		t.Fatal("missing clinic_interior")
	}

	if _, _, err := LoadAllMaps(fstest.MapFS{}, "maps"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
