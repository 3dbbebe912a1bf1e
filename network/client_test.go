package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automoto/herbclinic/shared/messages"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zap.NewNop().Sugar())
}

func TestSyncPositionSendsBodyAndDecodesRecord(t *testing.T) {
	var got messages.PositionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/player/position" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"_id":"p1","nickname":"小李","gold":50,"lastPosition":{"mapId":"clinic_interior","x":12,"y":-4}}`))
	})

	rec, err := c.SyncPosition(context.Background(), messages.PositionRequest{PlayerID: "p1", MapID: "clinic_interior", X: 12, Y: -4})
	if err != nil {
		t.Fatalf("SyncPosition: %v", err)
	}
	if got.PlayerID != "p1" || got.X != 12 || got.Y != -4 {
		t.Fatalf("unexpected request body %+v", got)
	}
	if rec.ID != "p1" || rec.Nickname != "小李" || rec.LastPosition.X != 12 {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestBearerTokenOnlyWhenSet(t *testing.T) {
	var auth []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = append(auth, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := c.ListSaves(context.Background()); err != nil {
		t.Fatalf("ListSaves: %v", err)
	}
	c.SetToken("abc")
	if _, err := c.ListSaves(context.Background()); err != nil {
		t.Fatalf("ListSaves: %v", err)
	}

	if auth[0] != "" {
		t.Errorf("expected no Authorization without token, got %q", auth[0])
	}
	if auth[1] != "Bearer abc" {
		t.Errorf("expected bearer token, got %q", auth[1])
	}
}

func TestNonSuccessStatusBecomesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"金币不足"}`))
	})

	_, err := c.Buy(context.Background(), messages.BuyRequest{PlayerID: "p1", ItemID: "item_ginseng", Count: 3})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "金币不足" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
	if Message(err) != "金币不足" {
		t.Fatalf("Message() = %q", Message(err))
	}
}

func TestPlainTextErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FetchItem(context.Background(), "item_goji")
	if Message(err) != "boom" {
		t.Fatalf("expected raw body as message, got %q", Message(err))
	}
}

func TestFetchPlayerPathAndMissingID(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"_id":"p9","lastPosition":{"mapId":"clinic_interior","x":10.7,"y":-3.2}}`))
	})

	if _, err := c.FetchPlayer(context.Background(), ""); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("expected ErrNoPlayer, got %v", err)
	}
	rec, err := c.FetchPlayer(context.Background(), "p9")
	if err != nil {
		t.Fatalf("FetchPlayer: %v", err)
	}
	if path != "/player/p9" {
		t.Errorf("unexpected path %q", path)
	}
	if rec.LastPosition.X != 10.7 || rec.LastPosition.Y != -3.2 {
		t.Errorf("unexpected position %+v", rec.LastPosition)
	}
}

func TestAsyncFuture(t *testing.T) {
	release := make(chan struct{})
	f := Async(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})
	if f.Ready() {
		t.Fatal("future ready before fn returned")
	}
	close(release)

	deadline := time.Now().Add(time.Second)
	for !f.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("future never completed")
		}
		time.Sleep(time.Millisecond)
	}
	if v, err := f.Result(); v != 7 || err != nil {
		t.Fatalf("Result() = %v, %v", v, err)
	}
}

func TestIsCanceledIgnoresTimeouts(t *testing.T) {
	if !IsCanceled(fmt.Errorf("POST /player/position: %w", context.Canceled)) {
		t.Error("wrapped context.Canceled should count as canceled")
	}
	if IsCanceled(fmt.Errorf("POST /player/position: %w", context.DeadlineExceeded)) {
		t.Error("a timeout is not a cancellation")
	}
}
