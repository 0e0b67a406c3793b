// Package telemetry records progression events for balance analysis.
// The recorder subscribes to the engine's event bus; nothing in the
// engine depends on this package.
package telemetry

import "time"

type EventType string

const (
	EventFacilityPurchased EventType = "facility_purchased"
	EventUpgradePurchased  EventType = "upgrade_purchased"
	EventMilestoneReached  EventType = "milestone_reached"
	EventPrestiged         EventType = "prestiged"
	EventAchievement       EventType = "achievement_unlocked"
	EventOfflineClaimed    EventType = "offline_claimed"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
