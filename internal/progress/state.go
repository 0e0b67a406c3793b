package progress

import "time"

// State is the mutable player-progress aggregate. It is owned by the
// engine: nothing outside engine entry points mutates it. Levels are
// sparse; an absent facility id means level 0.
type State struct {
	KnowledgePoints      float64
	TotalEarned          float64
	LifetimeEarned       float64
	FacilityLevels       map[string]int
	PurchasedUpgrades    []string
	UnlockedAchievements []string
	PrestigeLevel        int
	PrestigePoints       float64
	PrestigeMultiplier   float64
	LastActiveAt         time.Time
	PendingOfflineReward float64

	// Dirty marks local mutations not yet confirmed persisted remotely.
	Dirty bool
	// Version increments on every local save; the sync coordinator and
	// server compare it to decide which copy wins.
	Version    int64
	LastSyncAt time.Time
}

// New returns a fresh zero-valued state.
func New(now time.Time) State {
	return State{
		FacilityLevels:       map[string]int{},
		PurchasedUpgrades:    []string{},
		UnlockedAchievements: []string{},
		PrestigeMultiplier:   1,
		LastActiveAt:         now,
	}
}

// LevelOf returns the facility level, 0 when absent.
func (s *State) LevelOf(facilityID string) int {
	return s.FacilityLevels[facilityID]
}

// TotalLevels sums all facility levels.
func (s *State) TotalLevels() int {
	total := 0
	for _, lv := range s.FacilityLevels {
		total += lv
	}
	return total
}

// HasUpgrade reports whether the upgrade has been purchased this cycle.
func (s *State) HasUpgrade(upgradeID string) bool {
	for _, id := range s.PurchasedUpgrades {
		if id == upgradeID {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement has ever unlocked.
func (s *State) HasAchievement(achievementID string) bool {
	for _, id := range s.UnlockedAchievements {
		if id == achievementID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand to other goroutines.
func (s State) Clone() State {
	out := s
	out.FacilityLevels = make(map[string]int, len(s.FacilityLevels))
	for k, v := range s.FacilityLevels {
		out.FacilityLevels[k] = v
	}
	out.PurchasedUpgrades = append([]string{}, s.PurchasedUpgrades...)
	out.UnlockedAchievements = append([]string{}, s.UnlockedAchievements...)
	return out
}

func normalize(s State) State {
	if s.FacilityLevels == nil {
		s.FacilityLevels = map[string]int{}
	}
	if s.PurchasedUpgrades == nil {
		s.PurchasedUpgrades = []string{}
	}
	if s.UnlockedAchievements == nil {
		s.UnlockedAchievements = []string{}
	}
	if s.PrestigeMultiplier < 1 {
		s.PrestigeMultiplier = 1
	}
	if s.KnowledgePoints < 0 {
		s.KnowledgePoints = 0
	}
	return s
}
