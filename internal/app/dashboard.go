package app

import (
	"context"
	"log/slog"
	"sync"

	"skycast/internal/types"
	"skycast/internal/weather"
)

// Fetcher fetches a forecast for a coordinate. Satisfied by weather.Service.
type Fetcher interface {
	GetForecast(ctx context.Context, coords types.Coords) (*weather.Forecast, error)
}

type fetchResult struct {
	key      types.Coords
	forecast *weather.Forecast
	err      error
}

// Dashboard owns the displayed state: the adopted coordinate and the latest
// forecast for it. All mutation happens on the Run goroutine; every coordinate
// adoption starts a fetch keyed by that coordinate and cancels the in-flight
// fetch for the previous key. A completed fetch is applied only if its key
// still matches the current coordinate, so a stale result can never land.
// Fetch failure leaves the forecast absent: no retry, no timeout.
type Dashboard struct {
	fixes   <-chan types.Coords
	fetcher Fetcher
	logger  *slog.Logger

	mu       sync.Mutex
	coords   types.Coords
	located  bool
	forecast *weather.Forecast

	updates chan struct{}

	// run-loop only
	cancelFetch context.CancelFunc
}

func NewDashboard(fixes <-chan types.Coords, fetcher Fetcher, logger *slog.Logger) *Dashboard {
	return &Dashboard{
		fixes:   fixes,
		fetcher: fetcher,
		logger:  logger.With("component", "dashboard"),
		updates: make(chan struct{}, 1),
	}
}

// Run is the serialized execution context: it consumes location fixes and
// fetch results until ctx is cancelled.
func (d *Dashboard) Run(ctx context.Context) {
	results := make(chan fetchResult, 1)
	fixes := d.fixes

	for {
		select {
		case <-ctx.Done():
			d.stopFetch()
			return
		case coords, ok := <-fixes:
			if !ok {
				fixes = nil
				continue
			}
			d.adopt(ctx, coords, results)
		case result := <-results:
			d.apply(result)
		}
	}
}

// Updates signals after each applied forecast. The channel is buffered and
// coalescing: a slow consumer sees at least one signal, not one per apply.
func (d *Dashboard) Updates() <-chan struct{} {
	return d.updates
}

// Snapshot returns the adopted coordinate and the latest forecast, which is
// nil while no fetch has succeeded.
func (d *Dashboard) Snapshot() (types.Coords, bool, *weather.Forecast) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.coords, d.located, d.forecast
}

func (d *Dashboard) adopt(ctx context.Context, coords types.Coords, results chan<- fetchResult) {
	d.mu.Lock()
	d.coords = coords
	d.located = true
	d.mu.Unlock()

	d.stopFetch()

	fetchCtx, cancel := context.WithCancel(ctx)
	d.cancelFetch = cancel

	d.logger.Info("starting forecast fetch", "coords", coords.String())
	go func() {
		forecast, err := d.fetcher.GetForecast(fetchCtx, coords)
		select {
		case results <- fetchResult{key: coords, forecast: forecast, err: err}:
		case <-fetchCtx.Done():
		}
	}()
}

func (d *Dashboard) apply(result fetchResult) {
	d.mu.Lock()
	current := d.coords
	d.mu.Unlock()

	if result.key != current {
		d.logger.Debug("discarding stale forecast",
			"fetched_for", result.key.String(),
			"current", current.String(),
		)
		return
	}

	if result.err != nil {
		// Absorbed: the forecast stays absent until a later adoption.
		d.logger.Warn("forecast fetch failed", "coords", result.key.String(), "error", result.err)
		return
	}

	d.mu.Lock()
	d.forecast = result.forecast
	d.mu.Unlock()

	select {
	case d.updates <- struct{}{}:
	default:
	}
}

func (d *Dashboard) stopFetch() {
	if d.cancelFetch != nil {
		d.cancelFetch()
		d.cancelFetch = nil
	}
}
