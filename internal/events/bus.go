// Package events carries domain events from the engine to presentation
// subscribers. Dispatch is synchronous and fire-and-forget; listeners
// for a kind run in subscription order and must not block.
package events

import (
	"sync"
	"time"
)

type Kind string

const (
	KindPurchase       Kind = "purchase"
	KindMilestone      Kind = "milestone"
	KindPrestige       Kind = "prestige"
	KindAchievement    Kind = "achievement"
	KindOfflineClaimed Kind = "offline_claimed"
)

// Event is a domain event with a typed payload (one of the *Data
// structs below).
type Event struct {
	Kind Kind
	At   time.Time
	Data any
}

// PurchaseData is emitted after a successful facility or upgrade buy.
// Exactly one of FacilityID/UpgradeID is set.
type PurchaseData struct {
	FacilityID string
	UpgradeID  string
	Amount     int
	NewLevel   int
}

// MilestoneData is emitted when a purchase lands exactly on a milestone
// level.
type MilestoneData struct {
	FacilityID string
	Level      int
	Bonus      float64
}

// PrestigeData is emitted after a successful prestige reset.
type PrestigeData struct {
	Points   float64
	NewLevel int
}

// AchievementData is emitted exactly once per achievement unlock.
type AchievementData struct {
	AchievementID string
	Name          string
}

// OfflineClaimedData is emitted when a pending offline reward is
// claimed.
type OfflineClaimedData struct {
	Reward float64
}

// Listener receives events of the kind it subscribed to.
type Listener func(Event)

// Bus is a multi-subscriber event channel. Multiple presentation
// components can subscribe to the same kind without clobbering each
// other.
type Bus struct {
	mu        sync.RWMutex
	listeners map[Kind][]Listener
}

func NewBus() *Bus {
	return &Bus{listeners: map[Kind][]Listener{}}
}

// Subscribe appends a listener for the kind. There is no unsubscribe;
// bus lifetime matches the session.
func (b *Bus) Subscribe(kind Kind, fn Listener) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	b.listeners[kind] = append(b.listeners[kind], fn)
	b.mu.Unlock()
}

// Publish dispatches the event to every listener of its kind, in
// subscription order.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := b.listeners[ev.Kind]
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}
