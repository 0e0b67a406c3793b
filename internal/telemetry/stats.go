package telemetry

import (
	"encoding/json"
	"time"
)

type SessionStats struct {
	Period              string            `json:"period"`
	EventCounts         map[EventType]int `json:"event_counts"`
	FacilityPurchases   int               `json:"facility_purchases"`
	LevelsBought        int               `json:"levels_bought"`
	UpgradePurchases    int               `json:"upgrade_purchases"`
	Milestones          int               `json:"milestones"`
	Prestiges           int               `json:"prestiges"`
	Achievements        int               `json:"achievements"`
	OfflineClaimed      float64           `json:"offline_claimed"`
	PurchasesByFacility map[string]int    `json:"purchases_by_facility"`
}

// CalculateSessionStats aggregates balance numbers from recorded events.
func CalculateSessionStats(events []Event, since time.Time) (SessionStats, error) {
	stats := SessionStats{
		Period:              since.Format("2006-01-02"),
		EventCounts:         make(map[EventType]int),
		PurchasesByFacility: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventFacilityPurchased:
			stats.FacilityPurchases++
			if amount, ok := metadata["amount"].(float64); ok {
				stats.LevelsBought += int(amount)
			}
			if id, ok := metadata["facility_id"].(string); ok {
				stats.PurchasesByFacility[id]++
			}
		case EventUpgradePurchased:
			stats.UpgradePurchases++
		case EventMilestoneReached:
			stats.Milestones++
		case EventPrestiged:
			stats.Prestiges++
		case EventAchievement:
			stats.Achievements++
		case EventOfflineClaimed:
			if reward, ok := metadata["reward"].(float64); ok {
				stats.OfflineClaimed += reward
			}
		}
	}

	return stats, nil
}
