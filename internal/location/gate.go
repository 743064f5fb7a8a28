package location

import (
	"context"
	"log/slog"
	"sync"

	"skycast/internal/types"
)

// Gate wraps a Source and reduces its update stream to a single adopted
// coordinate. The first batch carrying at least one fix wins; every later
// update is ignored for the lifetime of the gate. A source that never
// delivers a fix (permission denied, no signal) leaves the gate unset
// indefinitely: no timeout, no retry, no surfaced error.
type Gate struct {
	source Source
	logger *slog.Logger

	mu     sync.Mutex
	coords types.Coords
	set    bool

	fix chan types.Coords
}

func NewGate(source Source, logger *slog.Logger) *Gate {
	return &Gate{
		source: source,
		logger: logger.With("component", "location-gate"),
		fix:    make(chan types.Coords, 1),
	}
}

// Run consumes the source's update batches until the source closes its
// channel or ctx is cancelled. Safe to run on its own goroutine; adoption
// is linearized behind the gate's mutex.
func (g *Gate) Run(ctx context.Context) {
	updates := g.source.Run(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-updates:
			if !ok {
				return
			}
			g.OnUpdate(batch)
		}
	}
}

// OnUpdate applies one update batch. If the gate is already set, or the
// batch carries no fix, the update is a no-op. Otherwise the most recent
// fix in the batch is adopted and published once on the Fix channel.
func (g *Gate) OnUpdate(positions []types.Coords) {
	g.mu.Lock()
	if g.set || len(positions) == 0 {
		g.mu.Unlock()
		return
	}
	adopted := positions[len(positions)-1]
	g.coords = adopted
	g.set = true
	g.mu.Unlock()

	g.logger.Info("location fix adopted", "coords", adopted.String())
	g.fix <- adopted
}

// Fix returns the channel on which the adopted coordinate is published.
// At most one value is ever delivered.
func (g *Gate) Fix() <-chan types.Coords {
	return g.fix
}

// Current returns the adopted coordinate, if any.
func (g *Gate) Current() (types.Coords, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coords, g.set
}
