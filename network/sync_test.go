package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/automoto/herbclinic/shared/gamemath"
	"github.com/automoto/herbclinic/shared/messages"
	"github.com/automoto/herbclinic/shared/motion"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakePoster struct {
	mu    sync.Mutex
	calls []messages.PositionRequest
	err   error
	block chan struct{}
}

func (f *fakePoster) SyncPosition(ctx context.Context, req messages.PositionRequest) (*messages.PlayerRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &messages.PlayerRecord{
		ID:           req.PlayerID,
		LastPosition: messages.Position{MapID: req.MapID, X: float64(req.X), Y: float64(req.Y)},
	}, nil
}

func (f *fakePoster) requests() []messages.PositionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]messages.PositionRequest(nil), f.calls...)
}

type counter struct{ n uint64 }

func (c *counter) Ticket() uint64 {
	c.n++
	return c.n
}

func newTestSync(p PositionPoster, interval time.Duration) *PositionSync {
	return NewPositionSync(p, &counter{}, interval, zap.NewNop().Sugar())
}

func waitResults(t *testing.T, s *PositionSync, n int) []SyncResult {
	t.Helper()
	var out []SyncResult
	deadline := time.Now().Add(time.Second)
	for len(out) < n {
		out = append(out, s.Drain()...)
		if time.Now().After(deadline) {
			t.Fatalf("expected %d results, got %d", n, len(out))
		}
		time.Sleep(time.Millisecond)
	}
	return out
}

func TestHoldRightThreeSecondsDispatchesOnce(t *testing.T) {
	poster := &fakePoster{}
	s := newTestSync(poster, 2*time.Second)
	defer s.Close()

	keys := motion.NewKeyStack(map[string]motion.Direction{"D": motion.DirRight})
	keys.OnKeyDown("D")

	const (
		speed = 300.0
		dt    = 1.0 / 60
	)
	pos := messages.Position{MapID: "clinic_interior"}
	dispatchTick := -1
	var xAtDispatch float64
	for tick := 1; tick <= 180; tick++ {
		v := motion.Resolve(motion.PolicyLastKeyWins, keys, speed)
		pos.X += v.X * dt
		pos.Y += v.Y * dt
		if s.Tick(dt, "p1", pos) {
			if dispatchTick != -1 {
				t.Fatalf("second dispatch at tick %d", tick)
			}
			dispatchTick = tick
			xAtDispatch = pos.X
		}
	}

	if dispatchTick < 120 {
		t.Fatalf("dispatch before 2s: tick %d", dispatchTick)
	}
	res := waitResults(t, s, 1)
	reqs := poster.requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	elapsed := float64(dispatchTick) * dt
	if want := gamemath.RoundCoord(speed * elapsed); reqs[0].X != want {
		t.Fatalf("expected x=%d, got %d", want, reqs[0].X)
	}
	if reqs[0].X != gamemath.RoundCoord(xAtDispatch) || reqs[0].Y != 0 {
		t.Fatalf("unexpected request %+v", reqs[0])
	}
	if res[0].Seq != 1 || res[0].Record.ID != "p1" {
		t.Fatalf("unexpected result %+v", res[0])
	}
}

func TestTimerFiresAtMostOncePerInterval(t *testing.T) {
	s := newTestSync(&fakePoster{}, 2*time.Second)
	defer s.Close()

	frames := []float64{0.5, 1.7, 0.01, 0.3, 3.5, 0.2}
	fired := 0
	for _, dt := range frames {
		if s.Tick(dt, "p1", messages.Position{}) {
			fired++
			if s.Elapsed() != 0 {
				t.Fatalf("timer not reset after dispatch: %v", s.Elapsed())
			}
		}
		if s.Elapsed() < 0 {
			t.Fatalf("timer went negative: %v", s.Elapsed())
		}
	}
	// 0.5+1.7 fires; 0.01+0.3+3.5 fires once despite the 3.5s frame.
	if fired != 2 {
		t.Fatalf("expected 2 dispatches, got %d", fired)
	}
}

func TestNoPlayerIDSkipsNetworkButKeepsTimer(t *testing.T) {
	poster := &fakePoster{}
	s := newTestSync(poster, time.Second)
	defer s.Close()

	if !s.Tick(1.0, "", messages.Position{X: 5}) {
		t.Fatal("expected interval to elapse")
	}
	if s.Elapsed() != 0 {
		t.Fatalf("expected timer reset, got %v", s.Elapsed())
	}
	if s.Dispatched() != 0 || s.Skipped() != 1 {
		t.Fatalf("dispatched=%d skipped=%d", s.Dispatched(), s.Skipped())
	}
	s.Close()
	if n := len(poster.requests()); n != 0 {
		t.Fatalf("expected no network call, got %d", n)
	}
}

func TestFailedUploadIsSwallowed(t *testing.T) {
	poster := &fakePoster{err: errors.New("connection refused")}
	s := newTestSync(poster, time.Second)
	defer s.Close()

	s.Tick(1, "p1", messages.Position{})
	s.wg.Wait()

	if got := s.Drain(); len(got) != 0 {
		t.Fatalf("expected no results from a failed upload, got %+v", got)
	}
	if s.Dispatched() != 1 {
		t.Fatalf("expected one dispatch, got %d", s.Dispatched())
	}
	if s.Elapsed() != 0 {
		t.Fatal("timer should reset regardless of outcome")
	}

	poster.err = nil
	s.Tick(1, "p1", messages.Position{X: 2})
	if got := waitResults(t, s, 1); got[0].Record.LastPosition.X != 2 {
		t.Fatalf("next upload should still go through, got %+v", got[0].Record)
	}
}

func TestTimeoutsAreLoggedButCancelIsNot(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	poster := &fakePoster{err: fmt.Errorf("post: %w", context.DeadlineExceeded)}
	s := NewPositionSync(poster, &counter{}, time.Second, zap.New(core).Sugar())
	defer s.Close()

	s.Tick(1, "p1", messages.Position{})
	s.wg.Wait()
	if n := logs.FilterMessageSnippet("failed").Len(); n != 1 {
		t.Fatalf("expected timed out upload to be logged once, got %d", n)
	}

	poster.err = fmt.Errorf("post: %w", context.Canceled)
	s.Tick(1, "p1", messages.Position{})
	s.wg.Wait()
	if n := logs.FilterMessageSnippet("failed").Len(); n != 1 {
		t.Fatalf("canceled upload must not be logged, got %d entries", n)
	}
}

func TestHeldSyncTakesNoTicketUntilReleased(t *testing.T) {
	tickets := &counter{}
	poster := &fakePoster{}
	s := NewPositionSync(poster, tickets, 2*time.Second, zap.NewNop().Sugar())
	defer s.Close()

	// The scene's record fetch takes the first ticket, then waits on a slow
	// backend while the player stands at the spawn point.
	s.Hold()
	fetchTicket := tickets.Ticket()
	for i := 0; i < 300; i++ {
		if s.Tick(1.0/60, "p1", messages.Position{MapID: "clinic_interior"}) {
			t.Fatal("held synchronizer must not fire")
		}
	}
	if n := len(poster.requests()); n != 0 {
		t.Fatalf("spawn position uploaded while held: %d requests", n)
	}
	if tickets.n != fetchTicket {
		t.Fatalf("held synchronizer took a ticket: %d", tickets.n)
	}

	s.Release()
	if s.Elapsed() != 0 {
		t.Fatalf("release should restart the timer, got %v", s.Elapsed())
	}
	s.Tick(2, "p1", messages.Position{MapID: "clinic_interior", X: 40, Y: 8})
	got := waitResults(t, s, 1)
	if got[0].Seq <= fetchTicket {
		t.Fatalf("upload seq %d must be newer than fetch ticket %d", got[0].Seq, fetchTicket)
	}
}

func TestCloseCancelsInFlightAndDropsResults(t *testing.T) {
	poster := &fakePoster{block: make(chan struct{})}
	s := newTestSync(poster, time.Second)

	s.Tick(1, "p1", messages.Position{X: 1})
	s.Close()
	close(poster.block)

	if got := s.Drain(); got != nil {
		t.Fatalf("expected results dropped after Close, got %+v", got)
	}
	if s.Tick(5, "p1", messages.Position{}) {
		t.Fatal("closed synchronizer must not dispatch")
	}
}

func TestSequenceNumbersIncrease(t *testing.T) {
	s := newTestSync(&fakePoster{}, time.Second)
	defer s.Close()

	s.Dispatch("p1", messages.Position{X: 1})
	s.Dispatch("p1", messages.Position{X: 2})
	res := waitResults(t, s, 2)

	seen := map[uint64]bool{}
	for _, r := range res {
		seen[r.Seq] = true
	}
	if !seen[1] || !seen[2] {
		t.Fatalf("expected sequences 1 and 2, got %+v", res)
	}
}
