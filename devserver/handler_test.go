package devserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/herbclinic/network"
	"github.com/automoto/herbclinic/shared/messages"
	"go.uber.org/zap"
)

var testItems = []messages.ItemDef{
	{ID: "item_licorice", Name: "甘草", Description: "调和诸药", Price: 10},
	{ID: "item_ginseng", Name: "人参", Description: "大补元气", Price: 100},
}

func newTestServer(t *testing.T, token string) (*network.Client, *Store) {
	t.Helper()
	st := NewStore(testItems, 2, Defaults{Gold: 120, Level: 1, Position: messages.Position{MapID: "clinic_interior"}})
	srv := httptest.NewServer(NewMux(st, token, zap.NewNop().Sugar()))
	t.Cleanup(srv.Close)
	return network.NewClient(srv.URL, 2*time.Second, zap.NewNop().Sugar()), st
}

func TestRoundTrip(t *testing.T) {
	c, _ := newTestServer(t, "")
	ctx := context.Background()

	rec, err := c.CreateSave(ctx, "小李")
	if err != nil {
		t.Fatalf("CreateSave: %v", err)
	}
	if rec.ID == "" || rec.Gold != 120 || rec.LastPosition.MapID != "clinic_interior" {
		t.Fatalf("unexpected new save %+v", rec)
	}

	list, err := c.ListSaves(ctx)
	if err != nil || len(list) != 1 || list[0].ID != rec.ID {
		t.Fatalf("ListSaves = %+v, %v", list, err)
	}

	moved, err := c.SyncPosition(ctx, messages.PositionRequest{PlayerID: rec.ID, MapID: "clinic_interior", X: 12, Y: -3})
	if err != nil {
		t.Fatalf("SyncPosition: %v", err)
	}
	if moved.LastPosition.X != 12 || moved.LastPosition.Y != -3 {
		t.Errorf("expected position (12, -3), got %+v", moved.LastPosition)
	}

	if _, err := c.Buy(ctx, messages.BuyRequest{PlayerID: rec.ID, ItemID: "item_licorice", Count: 3}); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if _, err := c.Buy(ctx, messages.BuyRequest{PlayerID: rec.ID, ItemID: "item_licorice", Count: 2}); err != nil {
		t.Fatalf("Buy again: %v", err)
	}

	if _, err := c.ChangeMap(ctx, messages.ChangeMapRequest{PlayerID: rec.ID, TargetMapID: "scene_market", X: 40, Y: 8}); err != nil {
		t.Fatalf("ChangeMap: %v", err)
	}

	got, err := c.FetchPlayer(ctx, rec.ID)
	if err != nil {
		t.Fatalf("FetchPlayer: %v", err)
	}
	if got.Gold != 70 {
		t.Errorf("expected 70 gold after buying 5 licorice, got %d", got.Gold)
	}
	if len(got.Inventory) != 1 || got.Inventory[0].Count != 5 {
		t.Errorf("expected one stack of 5, got %+v", got.Inventory)
	}
	if got.LastPosition != (messages.Position{MapID: "scene_market", X: 40, Y: 8}) {
		t.Errorf("unexpected position after change-map %+v", got.LastPosition)
	}

	item, err := c.FetchItem(ctx, "item_ginseng")
	if err != nil || item.Name != "人参" {
		t.Fatalf("FetchItem = %+v, %v", item, err)
	}
	items, err := c.FetchItems(ctx)
	if err != nil || len(items) != 2 {
		t.Fatalf("FetchItems = %+v, %v", items, err)
	}

	if _, err := c.DeleteSave(ctx, rec.ID); err != nil {
		t.Fatalf("DeleteSave: %v", err)
	}
	list, err = c.ListSaves(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected no saves after delete, got %+v, %v", list, err)
	}
}

func TestErrorsCarryMessage(t *testing.T) {
	c, _ := newTestServer(t, "")
	ctx := context.Background()

	rec, err := c.CreateSave(ctx, "小王")
	if err != nil {
		t.Fatalf("CreateSave: %v", err)
	}

	_, err = c.Buy(ctx, messages.BuyRequest{PlayerID: rec.ID, ItemID: "item_ginseng", Count: 2})
	var apiErr *network.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || network.Message(err) != ErrNotEnoughGold.Error() {
		t.Errorf("unexpected error %d %q", apiErr.Status, network.Message(err))
	}

	_, err = c.FetchItem(ctx, "item_unknown")
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %v", err)
	}

	_, err = c.FetchPlayer(ctx, "nobody")
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown player, got %v", err)
	}
}

func TestSlotLimit(t *testing.T) {
	c, _ := newTestServer(t, "")
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		if _, err := c.CreateSave(ctx, name); err != nil {
			t.Fatalf("CreateSave(%q): %v", name, err)
		}
	}
	if _, err := c.CreateSave(ctx, "c"); network.Message(err) != ErrSlotsFull.Error() {
		t.Errorf("expected slots full, got %v", err)
	}
	if _, err := c.CreateSave(ctx, "   "); err == nil {
		t.Error("expected blank nickname to be rejected")
	}
}

func TestTokenRequired(t *testing.T) {
	c, _ := newTestServer(t, "secret")
	ctx := context.Background()

	_, err := c.ListSaves(ctx)
	var apiErr *network.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %v", err)
	}

	c.SetToken("secret")
	if _, err := c.ListSaves(ctx); err != nil {
		t.Fatalf("ListSaves with token: %v", err)
	}
}

func TestOversizedBodyRejected(t *testing.T) {
	st := NewStore(testItems, 6, Defaults{})
	h := NewMux(st, "", zap.NewNop().Sugar())

	body := `{"nickname":"` + strings.Repeat("x", maxRequestBody) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/player/create-save", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized body, got %d", rec.Code)
	}
	if len(st.List()) != 0 {
		t.Error("oversized request must not create a save")
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	st := NewStore(testItems, 6, Defaults{Gold: 100})
	rec, _ := st.Create("小张")
	if _, err := st.Buy(rec.ID, "item_licorice", 1); err != nil {
		t.Fatalf("Buy: %v", err)
	}

	got, _ := st.Get(rec.ID)
	got.Inventory[0].Count = 99
	again, _ := st.Get(rec.ID)
	if again.Inventory[0].Count != 1 {
		t.Error("mutating a returned record changed the store")
	}
	if _, err := st.Buy(rec.ID, "item_licorice", 0); !errors.Is(err, ErrBadCount) {
		t.Errorf("expected ErrBadCount, got %v", err)
	}
}
