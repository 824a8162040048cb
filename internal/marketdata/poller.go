package marketdata

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paiid/paiid/internal/bus"
	"github.com/paiid/paiid/internal/store"
	"github.com/paiid/paiid/pkg/models"
)

// DefaultInterval is the market poll cadence.
const DefaultInterval = 60 * time.Second

// MarketAPI is the slice of the proxy API the poller needs.
type MarketAPI interface {
	Status(ctx context.Context) (models.MarketStatus, error)
	Indices(ctx context.Context) (dow, nasdaq models.IndexQuote, err error)
}

// Poller keeps the hub's market snapshot fresh. On start it hydrates
// from the snapshot cache, then refreshes immediately and on every
// interval tick. Status failures fail open: the market is assumed open
// so index data keeps refreshing rather than freezing on a transient
// backend error.
type Poller struct {
	api      MarketAPI
	store    store.SnapshotStore
	bus      *bus.Bus
	interval time.Duration
	log      *logrus.Entry
	now      func() time.Time

	mu      sync.RWMutex
	current models.MarketSnapshot
}

// NewPoller creates a Poller. A zero interval falls back to DefaultInterval.
func NewPoller(api MarketAPI, snapshots store.SnapshotStore, b *bus.Bus, interval time.Duration, log *logrus.Entry) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		api:      api,
		store:    snapshots,
		bus:      b,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Current returns the latest snapshot.
func (p *Poller) Current() models.MarketSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// SetInterval changes the poll cadence (config hot reload). Run picks
// the new interval up on its next tick.
func (p *Poller) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	p.mu.Lock()
	p.interval = interval
	p.mu.Unlock()
}

func (p *Poller) currentInterval() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.interval
}

// Run polls until the context is cancelled. It returns the context's
// error; no snapshot writes or events occur after cancellation.
func (p *Poller) Run(ctx context.Context) error {
	p.hydrate(ctx)
	p.refresh(ctx)

	interval := p.currentInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.refresh(ctx)
			if next := p.currentInterval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}

// hydrate seeds the snapshot from the cache so the hub shows last-known
// values before the first fetch completes.
func (p *Poller) hydrate(ctx context.Context) {
	if p.store == nil {
		return
	}
	snap, err := p.store.GetSnapshot(p.now())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.log.WithError(err).Warn("failed to read cached market snapshot")
		}
		return
	}
	p.publish(ctx, snap)
}

// refresh fetches status and, while the market is open, index quotes.
// Successful index fetches are persisted to the cache.
func (p *Poller) refresh(ctx context.Context) {
	status, err := p.api.Status(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.log.WithError(err).Warn("market status fetch failed, assuming open")
		status = models.MarketStatus{
			IsOpen:      true,
			State:       models.MarketOpen,
			Description: "Status unavailable",
		}
	}

	p.mu.RLock()
	snap := p.current
	p.mu.RUnlock()
	snap.Status = status

	if !status.IsOpen {
		// Market closed: keep showing the last cached quotes.
		p.publish(ctx, snap)
		return
	}

	dow, nasdaq, err := p.api.Indices(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.WithError(err).Warn("index fetch failed, keeping cached quotes")
			p.publish(ctx, snap)
		}
		return
	}

	snap.Dow = dow
	snap.Nasdaq = nasdaq
	snap.FetchedAt = p.now()

	if ctx.Err() != nil {
		return
	}
	if p.store != nil {
		if err := p.store.PutSnapshot(snap, p.now()); err != nil {
			p.log.WithError(err).Warn("failed to cache market snapshot")
		}
	}
	p.publish(ctx, snap)
}

// publish updates the current snapshot and notifies subscribers, unless
// the context has been cancelled.
func (p *Poller) publish(ctx context.Context, snap models.MarketSnapshot) {
	if ctx.Err() != nil {
		return
	}
	p.mu.Lock()
	p.current = snap
	p.mu.Unlock()
	if p.bus != nil {
		p.bus.Publish(bus.SnapshotEvent{Snapshot: snap})
	}
}
