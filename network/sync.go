package network

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/herbclinic/shared/gamemath"
	"github.com/automoto/herbclinic/shared/messages"
	"go.uber.org/zap"
)

// PositionPoster uploads a position. *Client implements it.
type PositionPoster interface {
	SyncPosition(ctx context.Context, req messages.PositionRequest) (*messages.PlayerRecord, error)
}

// Ticketer hands out monotonically increasing sequence numbers for requests
// that overwrite the player record.
type Ticketer interface {
	Ticket() uint64
}

// SyncResult is a completed upload, handed back to the frame loop.
type SyncResult struct {
	Seq    uint64
	Record *messages.PlayerRecord
}

// PositionSync uploads the player position on a fixed interval. Uploads are
// fire-and-forget: the timer resets whether or not the request succeeds and
// failures are only logged. Tick and Drain must be called from the same
// goroutine (the game update loop).
type PositionSync struct {
	poster   PositionPoster
	tickets  Ticketer
	log      *zap.SugaredLogger
	interval float64 // seconds

	timer      float64
	dispatched int
	skipped    int
	held       bool

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	results chan SyncResult // buffered; send is abandoned on Close
	closed  bool
}

func NewPositionSync(poster PositionPoster, tickets Ticketer, interval time.Duration, log *zap.SugaredLogger) *PositionSync {
	ctx, cancel := context.WithCancel(context.Background())
	return &PositionSync{
		poster:   poster,
		tickets:  tickets,
		log:      log,
		interval: interval.Seconds(),
		ctx:      ctx,
		cancel:   cancel,
		results:  make(chan SyncResult, 8),
	}
}

// Tick advances the timer by dt seconds. When the interval is reached it
// attempts a dispatch and resets the timer to zero. It reports whether the
// interval elapsed this tick.
func (p *PositionSync) Tick(dt float64, playerID string, pos messages.Position) bool {
	if p.closed || p.held {
		return false
	}
	if dt > 0 {
		p.timer += dt
	}
	if p.timer < p.interval {
		return false
	}
	p.Dispatch(playerID, pos)
	p.timer = 0
	return true
}

// Hold stops the timer until Release. While held no upload is sent and no
// ticket is taken, so an earlier record request cannot be outrun.
func (p *PositionSync) Hold() {
	p.held = true
}

// Release restarts the timer from zero.
func (p *PositionSync) Release() {
	if !p.held {
		return
	}
	p.held = false
	p.timer = 0
}

func (p *PositionSync) Held() bool { return p.held }

// Dispatch starts one upload. Without a player id nothing is sent.
func (p *PositionSync) Dispatch(playerID string, pos messages.Position) bool {
	if p.closed {
		return false
	}
	if playerID == "" {
		p.skipped++
		return false
	}

	req := messages.PositionRequest{
		PlayerID: playerID,
		MapID:    pos.MapID,
		X:        gamemath.RoundCoord(pos.X),
		Y:        gamemath.RoundCoord(pos.Y),
	}
	seq := p.tickets.Ticket()
	p.dispatched++

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		rec, err := p.poster.SyncPosition(p.ctx, req)
		if err != nil {
			if !IsCanceled(err) {
				p.log.Debugf("[sync] position upload #%d failed: %v", seq, err)
			}
			return
		}
		select {
		case p.results <- SyncResult{Seq: seq, Record: rec}:
		case <-p.ctx.Done():
		}
	}()
	return true
}

// Drain returns completed uploads without blocking. Nothing is returned
// once the synchronizer is closed.
func (p *PositionSync) Drain() []SyncResult {
	if p.closed {
		return nil
	}
	return drainChan(p.results)
}

// Close cancels in-flight uploads and waits for their goroutines. Results
// arriving afterwards are dropped.
func (p *PositionSync) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.cancel()
	p.wg.Wait()
}

func (p *PositionSync) Elapsed() float64 { return p.timer }
func (p *PositionSync) Dispatched() int  { return p.dispatched }
func (p *PositionSync) Skipped() int     { return p.skipped }

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
