package scenes

import (
	"context"
	"errors"
	"sync"

	cfg "github.com/automoto/herbclinic/config"
	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/saves"
	"github.com/automoto/herbclinic/shared/messages"
	"github.com/automoto/herbclinic/systems"
	"github.com/automoto/herbclinic/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SaveSelectScene lists the account's saves and lets the player create,
// delete or enter one. Requests run in the background and are applied in
// Update.
type SaveSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	env          *Env
	savesUI      *ui.SavesUI
	book         *saves.Book
	once         sync.Once

	ctx    context.Context
	cancel context.CancelFunc

	listing  *network.Future[[]messages.PlayerRecord]
	creating *network.Future[*messages.PlayerRecord]
	deleting *network.Future[*messages.Status]
	entering bool
}

func NewSaveSelectScene(sc SceneChanger, env *Env) *SaveSelectScene {
	return &SaveSelectScene{sceneChanger: sc, env: env}
}

func (s *SaveSelectScene) Update() {
	s.once.Do(s.configure)

	s.ecs.Update()
	s.savesUI.Update()
	s.applyResults()

	if s.entering {
		s.cancel()
		s.sceneChanger.ChangeScene(NewWorldScene(s.sceneChanger, s.env, cfg.Maps.Start))
	}
}

func (s *SaveSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if s.ecs == nil {
		return
	}
	s.savesUI.UI.Draw(screen)
}

func (s *SaveSelectScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.ecs.AddSystem(systems.UpdateInput)

	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.book = saves.NewBook(cfg.Saves.MaxSaves)

	s.savesUI = ui.NewSavesUI()
	s.savesUI.OnSelect = s.onSelect
	s.savesUI.OnOpenCreate = s.onOpenCreate
	s.savesUI.OnCreate = s.onCreate
	s.savesUI.OnCancel = func() { s.savesUI.ShowCreate(false) }
	s.savesUI.OnDelete = s.onDelete
	s.savesUI.OnConfirm = s.onConfirm

	s.refresh()
}

// applyResults hands finished requests to the book on the game loop.
func (s *SaveSelectScene) applyResults() {
	if s.listing.Ready() {
		list, err := s.listing.Result()
		s.listing = nil
		if err != nil {
			s.env.Log.Warnf("[saves] list failed: %v", err)
		}
		s.book.FinishRefresh(list, err)
		s.savesUI.Refresh(s.book)
	}

	if s.creating.Ready() {
		_, err := s.creating.Result()
		s.creating = nil
		if err != nil {
			s.env.Log.Warnf("[saves] create failed: %v", err)
		}
		if s.book.FinishCreate(err, network.Message(err)) {
			s.savesUI.ShowCreate(false)
			s.refresh()
			return
		}
		s.savesUI.Refresh(s.book)
	}

	if s.deleting.Ready() {
		_, err := s.deleting.Result()
		s.deleting = nil
		if err != nil {
			s.env.Log.Warnf("[saves] delete failed: %v", err)
		}
		if s.book.FinishDelete(err, network.Message(err)) {
			s.refresh()
			return
		}
		s.savesUI.Refresh(s.book)
	}
}

func (s *SaveSelectScene) refresh() {
	if s.listing != nil {
		return
	}
	s.book.BeginRefresh()
	s.savesUI.Refresh(s.book)
	s.listing = network.Async(s.ctx, s.env.Client.ListSaves)
}

func (s *SaveSelectScene) onSelect(id string) {
	if err := s.book.Select(id); err != nil {
		s.env.Log.Debugf("[saves] %v", err)
	}
	s.savesUI.Refresh(s.book)
}

func (s *SaveSelectScene) onOpenCreate() {
	if err := s.book.CanOpenCreate(); err != nil {
		s.savesUI.Refresh(s.book)
		return
	}
	s.savesUI.ShowCreate(true)
}

func (s *SaveSelectScene) onCreate(string) {
	if s.creating != nil {
		return
	}
	nickname := s.savesUI.Nickname()
	if err := s.book.ValidateCreate(nickname); err != nil {
		// An empty nickname is ignored; a full book shows its tip
		if errors.Is(err, saves.ErrSlotsFull) {
			s.savesUI.ShowCreate(false)
			s.savesUI.Refresh(s.book)
		}
		return
	}
	s.creating = network.Async(s.ctx, func(ctx context.Context) (*messages.PlayerRecord, error) {
		return s.env.Client.CreateSave(ctx, nickname)
	})
}

func (s *SaveSelectScene) onDelete() {
	if s.deleting != nil {
		return
	}
	id, err := s.book.BeginDelete()
	if err != nil {
		return
	}
	s.savesUI.Refresh(s.book)
	s.deleting = network.Async(s.ctx, func(ctx context.Context) (*messages.Status, error) {
		return s.env.Client.DeleteSave(ctx, id)
	})
}

func (s *SaveSelectScene) onConfirm() {
	id, err := s.book.Confirm()
	if err != nil {
		return
	}
	s.savesUI.Refresh(s.book)
	s.env.Session.SetPlayerID(id)
	systems.RememberPlayer(id)
	s.env.Log.Infof("[saves] entering with player %s", id)
	s.entering = true
}
