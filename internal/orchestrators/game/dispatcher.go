package game

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
)

// dispatcher is the single gateway through which state changes. Transforms
// run one at a time under mu, each on a private clone of the latest commit.
type dispatcher struct {
	mu        sync.Mutex
	state     *entities.GameState
	stopped   bool
	clock     clock.Clock
	persister *persister
}

func newDispatcher(c clock.Clock, p *persister) *dispatcher {
	return &dispatcher{clock: c, persister: p}
}

// dispatch applies fn to a private copy of the committed state and commits
// the state fn returns, or the unchanged state when fn returns nil. Before
// install it is a no-op returning false.
func dispatch[R any](d *dispatcher, fn func(*entities.GameState) (*entities.GameState, R)) (R, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero R
	if d.state == nil {
		return zero, false
	}

	next, result := fn(d.state.Clone())
	if next == nil {
		next = d.state.Clone()
	}
	next.LastActive = d.clock.Now()
	d.state = next

	if !d.stopped {
		d.schedule(next)
	}
	return result, true
}

// install replaces the committed state without persisting it
func (d *dispatcher) install(state *entities.GameState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = state
}

func (d *dispatcher) snapshot() *entities.GameState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Clone()
}

// stop prevents further saves; commits still apply in memory
func (d *dispatcher) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
}

// schedule must be called with mu held so payloads are queued in commit order
func (d *dispatcher) schedule(state *entities.GameState) {
	payload, err := encodeState(state)
	if err != nil {
		d.persister.failures.Add(1)
		slog.Error("Failed to encode game state", "error", err)
		return
	}
	d.persister.enqueue(payload)
}

// persister writes snapshots on a single goroutine. The queue holds one
// payload; a newer payload replaces one that has not been picked up yet.
// Payloads carry increasing sequence numbers so flush can wait for the
// latest one without counting superseded writes.
type persister struct {
	repo    saveslot.Repository
	key     string
	timeout time.Duration

	pending chan queuedSave
	done    chan struct{}
	closed  atomic.Bool

	mu      sync.Mutex
	queued  uint64
	settled uint64
	waiters []flushWaiter

	failures atomic.Int64
}

type queuedSave struct {
	seq     uint64
	payload []byte
}

type flushWaiter struct {
	seq uint64
	ch  chan struct{}
}

func newPersister(repo saveslot.Repository, key string, timeout time.Duration) *persister {
	p := &persister{
		repo:    repo,
		key:     key,
		timeout: timeout,
		pending: make(chan queuedSave, 1),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// enqueue is only called by the dispatcher while it holds its lock, so there
// is never more than one sender.
func (p *persister) enqueue(payload []byte) {
	if p.closed.Load() {
		return
	}

	p.mu.Lock()
	p.queued++
	seq := p.queued
	p.mu.Unlock()

	select {
	case <-p.pending:
		// superseded before the writer saw it
	default:
	}
	p.pending <- queuedSave{seq: seq, payload: payload}
}

func (p *persister) run() {
	defer close(p.done)

	for save := range p.pending {
		p.write(save.payload)
		p.settle(save.seq)
	}
}

func (p *persister) write(payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if _, err := p.repo.Set(ctx, saveslot.SetInput{Key: p.key, Payload: payload}); err != nil {
		p.failures.Add(1)
		slog.Error("Failed to save game state",
			"key", p.key,
			"bytes", len(payload),
			"error", err,
		)
	}
}

// settle marks every save up to seq as finished and wakes matching flushes
func (p *persister) settle(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.settled = seq
	remaining := p.waiters[:0]
	for _, w := range p.waiters {
		if w.seq <= seq {
			close(w.ch)
			continue
		}
		remaining = append(remaining, w)
	}
	p.waiters = remaining
}

// flush waits until the latest payload queued before the call is written
func (p *persister) flush(ctx context.Context) error {
	p.mu.Lock()
	if p.settled >= p.queued {
		p.mu.Unlock()
		return nil
	}
	w := flushWaiter{seq: p.queued, ch: make(chan struct{})}
	p.waiters = append(p.waiters, w)
	p.mu.Unlock()

	select {
	case <-w.ch:
		return nil
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.CodeDeadlineExceeded, "timed out waiting for saves")
	}
}

// close stops accepting payloads and waits for the writer to finish the last one
func (p *persister) close(ctx context.Context) error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(p.pending)

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.CodeDeadlineExceeded, "timed out waiting for saves")
	}
}
