package progress

import "time"

// Snapshot is the wire/cache shape of a State. The same record is
// written to the local cache and exchanged with the remote sync
// endpoint; field names follow the sync API.
type Snapshot struct {
	KnowledgePoints      float64        `json:"knowledge_points"`
	TotalEarned          float64        `json:"total_earned"`
	LifetimeEarned       float64        `json:"lifetime_earned"`
	FacilityLevels       map[string]int `json:"facility_levels"`
	Upgrades             []string       `json:"upgrades"`
	Achievements         []string       `json:"achievements"`
	PrestigeLevel        int            `json:"prestige_level"`
	PrestigePoints       float64        `json:"prestige_points"`
	PrestigeMultiplier   float64        `json:"prestige_multiplier,omitempty"`
	LastActiveAt         time.Time      `json:"last_active_at,omitempty"`
	PendingOfflineReward float64        `json:"pending_offline_reward,omitempty"`
	Version              int64          `json:"version,omitempty"`
	SavedAt              time.Time      `json:"saved_at,omitempty"`
}

// Snapshot captures the persistable fields of the state.
func (s State) Snapshot() Snapshot {
	c := s.Clone()
	return Snapshot{
		KnowledgePoints:      c.KnowledgePoints,
		TotalEarned:          c.TotalEarned,
		LifetimeEarned:       c.LifetimeEarned,
		FacilityLevels:       c.FacilityLevels,
		Upgrades:             c.PurchasedUpgrades,
		Achievements:         c.UnlockedAchievements,
		PrestigeLevel:        c.PrestigeLevel,
		PrestigePoints:       c.PrestigePoints,
		PrestigeMultiplier:   c.PrestigeMultiplier,
		LastActiveAt:         c.LastActiveAt,
		PendingOfflineReward: c.PendingOfflineReward,
		Version:              c.Version,
	}
}

// FromSnapshot rebuilds a State from a persisted record. Missing maps
// and out-of-range values are normalized rather than rejected; a
// half-written cache record degrades to a playable state.
func FromSnapshot(snap Snapshot) State {
	st := State{
		KnowledgePoints:      snap.KnowledgePoints,
		TotalEarned:          snap.TotalEarned,
		LifetimeEarned:       snap.LifetimeEarned,
		FacilityLevels:       snap.FacilityLevels,
		PurchasedUpgrades:    snap.Upgrades,
		UnlockedAchievements: snap.Achievements,
		PrestigeLevel:        snap.PrestigeLevel,
		PrestigePoints:       snap.PrestigePoints,
		PrestigeMultiplier:   snap.PrestigeMultiplier,
		LastActiveAt:         snap.LastActiveAt,
		PendingOfflineReward: snap.PendingOfflineReward,
		Version:              snap.Version,
	}
	if st.LastActiveAt.IsZero() {
		st.LastActiveAt = time.Now()
	}
	return normalize(st).Clone()
}
