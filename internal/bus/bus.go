// Package bus is a small in-process pub/sub used to fan out snapshot
// updates, toasts, and profile changes to the TUI. It replaces the ad hoc
// stringly-typed window events the dashboard previously relied on with
// typed payloads.
package bus

import (
	"sync"
	"time"

	"github.com/paiid/paiid/pkg/models"
)

// ToastLevel classifies a toast notification.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Event is a marker for bus payloads.
type Event interface {
	isEvent()
}

// ToastEvent asks the UI to show a transient notification.
type ToastEvent struct {
	Level   ToastLevel
	Message string
}

// SnapshotEvent carries a fresh market snapshot from the poller.
type SnapshotEvent struct {
	Snapshot models.MarketSnapshot
}

// ProfileUpdatedEvent signals that the user profile changed.
type ProfileUpdatedEvent struct {
	Profile models.Profile
}

// OrderPlacedEvent signals that an order was accepted.
type OrderPlacedEvent struct {
	Order models.Order
}

// ConfigReloadedEvent carries the display cadences from a reloaded
// config file so the TUI can pick them up without restarting.
type ConfigReloadedEvent struct {
	RefreshRate     time.Duration
	MonitorInterval time.Duration
}

func (ToastEvent) isEvent()          {}
func (SnapshotEvent) isEvent()       {}
func (ProfileUpdatedEvent) isEvent() {}
func (OrderPlacedEvent) isEvent()    {}
func (ConfigReloadedEvent) isEvent() {}

// subscriberBuffer is the per-subscriber channel depth. Publish never
// blocks; events beyond the buffer are dropped for that subscriber.
const subscriberBuffer = 16

// Bus fans events out to all subscribers.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel of events and an unsubscribe function.
// The channel is closed on unsubscribe.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish delivers the event to every subscriber without blocking.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			// Subscriber is behind; drop rather than stall the publisher.
		}
	}
}
