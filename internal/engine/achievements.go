package engine

import (
	"github.com/ISSA-Motomu/Study-Guardian/internal/catalog"
	"github.com/ISSA-Motomu/Study-Guardian/internal/events"
)

// checkAchievementsLocked scans the catalog for newly satisfied
// achievements and records them on the state. Each achievement unlocks
// at most once; unlocks never reverse even if the underlying aggregate
// later drops (prestige resets TotalEarned but the unlocked set
// survives). Must be called with the mutex held; the returned events
// are published by the caller after unlock.
func (e *Engine) checkAchievementsLocked() []events.Event {
	var pending []events.Event
	for _, a := range e.val.Catalog.Achievements {
		if e.st.HasAchievement(a.ID) {
			continue
		}
		if !e.conditionMet(a) {
			continue
		}
		e.st.UnlockedAchievements = append(e.st.UnlockedAchievements, a.ID)
		e.st.Dirty = true
		pending = append(pending, events.Event{
			Kind: events.KindAchievement,
			At:   e.clock.Now(),
			Data: events.AchievementData{AchievementID: a.ID, Name: a.Name},
		})
	}
	return pending
}

func (e *Engine) conditionMet(a catalog.Achievement) bool {
	switch a.Condition {
	case catalog.CondTotalKP:
		return e.st.TotalEarned >= a.Threshold
	case catalog.CondLifetimeKP:
		return e.st.LifetimeEarned+e.st.TotalEarned >= a.Threshold
	case catalog.CondTotalLevels:
		return float64(e.st.TotalLevels()) >= a.Threshold
	case catalog.CondPrestigeCount:
		return float64(e.st.PrestigeLevel) >= a.Threshold
	default:
		return false
	}
}
