package scenes

import (
	"context"
	"sync"

	"github.com/automoto/herbclinic/assets"
	"github.com/automoto/herbclinic/backpack"
	"github.com/automoto/herbclinic/components"
	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/market"
	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/shared/gamemath"
	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/automoto/herbclinic/shared/leveldata"
	"github.com/automoto/herbclinic/shared/messages"
	"github.com/automoto/herbclinic/shared/relay"
	"github.com/automoto/herbclinic/systems"
	"github.com/automoto/herbclinic/systems/factory"
	"github.com/automoto/herbclinic/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// arrival is where the player appears when a scene is entered through a
// door instead of from the save screen.
type arrival struct {
	x, y float64
}

type fetchResult struct {
	ticket uint64
	record *messages.PlayerRecord
}

// WorldScene is one walkable map: the clinic or the market. The player
// record is fetched on entry; position uploads, purchases and map changes
// run in the background and are applied in Update.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	env          *Env
	mapID        string
	arrive       *arrival
	level        *assets.Level
	once         sync.Once

	ctx    context.Context
	cancel context.CancelFunc
	sync   *network.PositionSync

	goBack   bool
	restored bool

	fetching   *network.Future[fetchResult]
	buying     *network.Future[*messages.Status]
	buyingFrom *market.Stalls
	travelling *network.Future[*messages.Status]
	travelTo   messages.ChangeMapRequest
	resolving  *network.Future[[]backpack.Entry]

	overlay    components.OverlayID
	stalls     *market.Stalls
	marketUI   *ui.MarketUI
	backpackUI *ui.BackpackUI
	nextScene  interface{}
}

// NewWorldScene enters mapID and restores the player at the last position
// the backend stored for it.
func NewWorldScene(sc SceneChanger, env *Env, mapID string) *WorldScene {
	return &WorldScene{sceneChanger: sc, env: env, mapID: mapID}
}

// NewWorldSceneAt enters mapID at a world position, used after a map change.
func NewWorldSceneAt(sc SceneChanger, env *Env, mapID string, x, y float64) *WorldScene {
	return &WorldScene{sceneChanger: sc, env: env, mapID: mapID, arrive: &arrival{x: x, y: y}}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.goBack {
		ws.leave(NewSaveSelectScene(ws.sceneChanger, ws.env))
		return
	}

	ws.ecs.Update()
	ws.updateOverlay()
	ws.applyResults()

	if exit, ok := systems.EnteredExit(ws.ecs); ok {
		ws.travel(exit.TargetMapID, exit.TargetX, exit.TargetY)
	}

	if ws.nextScene != nil {
		ws.leave(ws.nextScene)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ws.ecs == nil || ws.goBack {
		return
	}
	ws.ecs.Draw(screen)

	switch {
	case ws.marketUI != nil:
		ws.marketUI.Draw(screen)
	case ws.backpackUI != nil:
		ws.backpackUI.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	ws.ctx, ws.cancel = context.WithCancel(context.Background())

	if ws.env.Session.PlayerID() == "" {
		ws.env.Log.Infof("[world] no save selected, back to save select")
		ws.goBack = true
		return
	}

	if err := assets.LoadShaders(); err != nil {
		ws.env.Log.Warnf("[world] highlight shader unavailable: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateNPCs)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateExits)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateSync)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateEvents) // Must be last: delivers HUD events

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawNPCLabels)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	// Create the level entity and load level data FIRST.
	levelEntry, err := factory.CreateLevel(ws.ecs, ws.mapID)
	if err != nil {
		ws.env.Log.Errorf("[world] load map %s: %v", ws.mapID, err)
		ws.goBack = true
		return
	}
	ws.level = components.Level.Get(levelEntry).CurrentLevel

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ws.ecs, ws.level.Width, ws.level.Height, 16, 16)

	for _, wall := range ws.level.Walls {
		factory.CreateWall(ws.ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, npc := range ws.level.NPCs {
		factory.CreateNPC(ws.ecs, npc)
	}
	for _, exit := range ws.level.Exits {
		factory.CreateExit(ws.ecs, exit)
	}

	factory.CreatePlayer(ws.ecs, ws.level.SpawnX, ws.level.SpawnY)
	if ws.arrive != nil {
		systems.PlacePlayer(ws.ecs, ws.arrive.x, ws.arrive.y)
	}
	// Standing on a door at entry must not send the player straight back
	systems.UpdateExits(ws.ecs)

	factory.CreateCamera(ws.ecs, ws.level.SpawnX, ws.level.SpawnY)
	factory.CreateHUD(ws.ecs)
	factory.CreateOverlay(ws.ecs)

	ws.sync = network.NewPositionSync(ws.env.Client, ws.env.Session, cfg.Sync.Interval, ws.env.Log)
	// Uploading the spawn point before the stored position is restored would
	// overwrite it on the backend.
	ws.sync.Hold()
	factory.CreateSync(ws.ecs, ws.sync, ws.env.Session, ws.mapID)

	systems.SubscribeHUD(ws.ecs.World)
	if pos, ok := systems.PlayerPosition(ws.ecs); ok {
		relay.PublishCoordinates(ws.ecs.World, pos)
	}

	ws.fetchPlayer()
}

// leave stops background work and switches scene. Late results of this
// scene are dropped.
func (ws *WorldScene) leave(next interface{}) {
	if ws.sync != nil {
		ws.sync.Close()
	}
	if ws.cancel != nil {
		ws.cancel()
	}
	ws.sceneChanger.ChangeScene(next)
}

func (ws *WorldScene) fetchPlayer() {
	ticket := ws.env.Session.Ticket()
	playerID := ws.env.Session.PlayerID()
	ws.fetching = network.Async(ws.ctx, func(ctx context.Context) (fetchResult, error) {
		rec, err := ws.env.Client.FetchPlayer(ctx, playerID)
		return fetchResult{ticket: ticket, record: rec}, err
	})
}

func (ws *WorldScene) applyResults() {
	if ws.fetching.Ready() {
		res, err := ws.fetching.Result()
		ws.fetching = nil
		switch {
		case err != nil:
			ws.env.Log.Warnf("[world] fetch player: %v", err)
			systems.PublishNotice(ws.ecs, hudtext.SavesLoadFailed)
			if !ws.restored && !network.IsCanceled(err) {
				// Uploads stay held until the stored position is known
				ws.fetchPlayer()
			}
		default:
			if ws.env.Session.Apply(res.ticket, res.record) {
				relay.PublishRefresh(ws.ecs.World, *ws.env.Session.Record())
			}
			ws.restore(res.record)
			ws.sync.Release()
		}
	}

	if ws.buying.Ready() {
		_, err := ws.buying.Result()
		ws.buying = nil
		if err != nil {
			ws.env.Log.Warnf("[market] buy: %v", err)
		}
		switch {
		case ws.stalls != nil && ws.buyingFrom == ws.stalls:
			ok := ws.stalls.Finish(err, network.Message(err))
			if ws.marketUI != nil {
				ws.marketUI.SetBusy(false)
				ws.marketUI.Refresh(ws.stalls)
			}
			if ok {
				systems.PublishNotice(ws.ecs, ws.stalls.Tip)
				ws.fetchPlayer()
			}
		case err == nil:
			// The market was closed while the purchase was in flight
			ws.fetchPlayer()
		}
		ws.buyingFrom = nil
	}

	if ws.travelling.Ready() {
		_, err := ws.travelling.Result()
		ws.travelling = nil
		if err != nil {
			ws.env.Log.Warnf("[world] change map to %s: %v", ws.travelTo.TargetMapID, err)
			systems.PublishNotice(ws.ecs, "切换地图失败: "+network.Message(err))
		} else {
			ws.env.Log.Infof("[world] %s -> %s", ws.mapID, ws.travelTo.TargetMapID)
			ws.nextScene = NewWorldSceneAt(ws.sceneChanger, ws.env, ws.travelTo.TargetMapID,
				float64(ws.travelTo.X), float64(ws.travelTo.Y))
		}
	}

	if ws.resolving.Ready() {
		entries, _ := ws.resolving.Result()
		ws.resolving = nil
		if ws.backpackUI != nil {
			ws.backpackUI.SetEntries(entries)
		}
	}
}

// restore puts the player at the stored position the first time a record
// arrives, when that position is on this map. A record outdated by a newer
// upload still carries the position the scene was entered with.
func (ws *WorldScene) restore(rec *messages.PlayerRecord) {
	if ws.restored || rec == nil {
		return
	}
	ws.restored = true
	if ws.arrive != nil || rec.LastPosition.MapID != ws.mapID {
		return
	}
	systems.PlacePlayer(ws.ecs, rec.LastPosition.X, rec.LastPosition.Y)
	systems.UpdateExits(ws.ecs)
	if pos, ok := systems.PlayerPosition(ws.ecs); ok {
		relay.PublishCoordinates(ws.ecs.World, pos)
	}
}

// travel asks the backend to move the player, then switches scene on
// success.
func (ws *WorldScene) travel(mapID string, x, y float64) {
	if ws.travelling != nil || mapID == "" {
		return
	}
	ws.travelTo = messages.ChangeMapRequest{
		PlayerID:    ws.env.Session.PlayerID(),
		TargetMapID: mapID,
		X:           gamemath.RoundCoord(x),
		Y:           gamemath.RoundCoord(y),
	}
	systems.PublishNotice(ws.ecs, hudtext.Travel(cfg.Maps.DisplayNames, mapID))
	req := ws.travelTo
	ws.travelling = network.Async(ws.ctx, func(ctx context.Context) (*messages.Status, error) {
		return ws.env.Client.ChangeMap(ctx, req)
	})
}

// updateOverlay builds or drops the panel matching the overlay component
// and forwards input to it.
func (ws *WorldScene) updateOverlay() {
	overlay := systems.GetOrCreateOverlay(ws.ecs)
	if overlay.Active != ws.overlay {
		ws.marketUI, ws.backpackUI, ws.stalls = nil, nil, nil
		switch overlay.Active {
		case components.OverlayMarket:
			ws.openMarket()
		case components.OverlayBackpack:
			ws.openBackpack()
		}
		ws.overlay = overlay.Active
	}

	switch {
	case ws.marketUI != nil:
		ws.marketUI.Update()
	case ws.backpackUI != nil:
		ws.backpackUI.Update()
	}
}

func (ws *WorldScene) openMarket() {
	herbs := make([]market.Herb, 0, len(cfg.Market.Herbs))
	for _, h := range cfg.Market.Herbs {
		herbs = append(herbs, market.Herb{ID: h.ID, Name: h.Name, Price: h.Price, Season: h.Season})
	}
	ws.stalls = market.NewStalls(herbs)

	var move *leveldata.Exit
	if len(ws.level.Exits) > 0 {
		move = &ws.level.Exits[0]
	}
	label := ""
	if move != nil {
		label = move.Label
	}

	ws.marketUI = ui.NewMarketUI(herbs, label)
	ws.marketUI.OnPick = func(id string) {
		if err := ws.stalls.Open(id); err != nil {
			ws.env.Log.Debugf("[market] %v", err)
		}
		ws.marketUI.Refresh(ws.stalls)
	}
	ws.marketUI.OnBuy = ws.buy
	ws.marketUI.OnCancel = func() {
		ws.stalls.Close()
		ws.marketUI.Refresh(ws.stalls)
	}
	ws.marketUI.OnClose = func() { systems.CloseOverlay(ws.ecs) }
	ws.marketUI.OnRumour = func() { ws.marketUI.ShowRumour("") }
	ws.marketUI.OnMapMove = func() {
		if move != nil {
			systems.CloseOverlay(ws.ecs)
			ws.travel(move.TargetMapID, move.TargetX, move.TargetY)
		}
	}
	ws.marketUI.Show()

	if rumour, ok := market.RollRumour(ws.env.Rand, cfg.Market.RumourChance, cfg.Market.Rumours); ok {
		ws.marketUI.ShowRumour(rumour)
	}
}

func (ws *WorldScene) buy(count string) {
	if ws.buying != nil || ws.stalls == nil {
		return
	}
	req, err := ws.stalls.Request(ws.env.Session.PlayerID(), count)
	if err != nil {
		ws.marketUI.Refresh(ws.stalls)
		return
	}
	ws.marketUI.SetBusy(true)
	ws.buyingFrom = ws.stalls
	ws.buying = network.Async(ws.ctx, func(ctx context.Context) (*messages.Status, error) {
		return ws.env.Client.Buy(ctx, req)
	})
}

func (ws *WorldScene) openBackpack() {
	ws.backpackUI = ui.NewBackpackUI()
	ws.backpackUI.OnClose = func() { systems.CloseOverlay(ws.ecs) }
	ws.backpackUI.SetLoading()

	rec := ws.env.Session.Record()
	if rec == nil {
		ws.backpackUI.SetEntries(nil)
		return
	}
	inv := rec.Inventory
	ws.resolving = network.Async(ws.ctx, func(ctx context.Context) ([]backpack.Entry, error) {
		return backpack.Resolve(ctx, inv, ws.env.Session, ws.env.Client, ws.env.Log), nil
	})
}
