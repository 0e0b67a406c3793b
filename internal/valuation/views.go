package valuation

import (
	"math"
	"sort"

	"github.com/ISSA-Motomu/Study-Guardian/internal/catalog"
	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

// FacilityView is the computed per-facility view-model handed to the
// presentation collaborator.
type FacilityView struct {
	catalog.Facility
	Level              int
	CurrentCost        float64
	Production         float64
	PerLevelProduction float64 // production one level contributes; shown for unowned facilities
	MilestoneBonus     float64
	NextMilestone      *Milestone
	State              UnlockState
	CanAfford          bool
	ProgressToUnlock   float64 // percent, capped at 100
	UpgradeMultiplier  float64
}

// FacilityViews computes the full facility list with state.
func (v Valuer) FacilityViews(st *progress.State) []FacilityView {
	out := make([]FacilityView, 0, len(v.Catalog.Facilities))
	for _, f := range v.Catalog.Facilities {
		level := st.LevelOf(f.ID)
		state := v.FacilityUnlockState(st, f)
		upMult := v.UpgradeMultiplier(st, f)

		view := FacilityView{
			Facility:           f,
			Level:              level,
			CurrentCost:        v.Cost(f.BaseCost, level),
			Production:         v.FacilityProduction(st, f),
			PerLevelProduction: f.BaseProduction * upMult * st.PrestigeMultiplier,
			MilestoneBonus:     v.MilestoneBonus(level),
			State:              state,
			CanAfford:          state == StateUnlocked && st.KnowledgePoints >= v.Cost(f.BaseCost, level),
			UpgradeMultiplier:  upMult,
		}
		if next, ok := v.NextMilestone(level); ok {
			view.NextMilestone = &next
		}
		if f.UnlockAt <= 0 {
			view.ProgressToUnlock = 100
		} else {
			view.ProgressToUnlock = math.Min(100, st.TotalEarned/f.UnlockAt*100)
		}
		out = append(out, view)
	}
	return out
}

// TierGroup groups facility views by era.
type TierGroup struct {
	Tier       int
	Name       string
	Facilities []FacilityView
}

// FacilitiesByTier groups the views per era, ordered by tier.
func (v Valuer) FacilitiesByTier(st *progress.State) []TierGroup {
	grouped := map[int][]FacilityView{}
	for _, view := range v.FacilityViews(st) {
		grouped[view.Tier] = append(grouped[view.Tier], view)
	}
	tiers := make([]int, 0, len(grouped))
	for tier := range grouped {
		tiers = append(tiers, tier)
	}
	sort.Ints(tiers)

	out := make([]TierGroup, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, TierGroup{
			Tier:       tier,
			Name:       v.Catalog.TierName(tier),
			Facilities: grouped[tier],
		})
	}
	return out
}

// UpgradeView is the per-upgrade view-model.
type UpgradeView struct {
	catalog.Upgrade
	Purchased bool
	Unlocked  bool
	CanAfford bool
}

// UpgradeViews computes the upgrade list with state. Purchased upgrades
// stay visible as unlocked.
func (v Valuer) UpgradeViews(st *progress.State) []UpgradeView {
	out := make([]UpgradeView, 0, len(v.Catalog.Upgrades))
	for _, u := range v.Catalog.Upgrades {
		purchased := st.HasUpgrade(u.ID)
		unlocked := v.UpgradeUnlocked(st, u) || purchased
		out = append(out, UpgradeView{
			Upgrade:   u,
			Purchased: purchased,
			Unlocked:  unlocked,
			CanAfford: unlocked && !purchased && st.KnowledgePoints >= u.Cost,
		})
	}
	return out
}

// AvailableUpgrades filters to unlocked, not-yet-purchased upgrades.
func (v Valuer) AvailableUpgrades(st *progress.State) []UpgradeView {
	var out []UpgradeView
	for _, u := range v.UpgradeViews(st) {
		if u.Unlocked && !u.Purchased {
			out = append(out, u)
		}
	}
	return out
}

// NextUnlock returns the first facility not yet fully unlocked, in
// catalog order, or false when everything is unlocked.
func (v Valuer) NextUnlock(st *progress.State) (FacilityView, bool) {
	for _, view := range v.FacilityViews(st) {
		if view.State != StateUnlocked {
			return view, true
		}
	}
	return FacilityView{}, false
}

// CurrentEra is the highest tier with at least one unlocked facility.
func (v Valuer) CurrentEra(st *progress.State) int {
	era := catalog.MinTier
	for _, f := range v.Catalog.Facilities {
		if f.Tier > era && v.FacilityUnlockState(st, f) == StateUnlocked {
			era = f.Tier
		}
	}
	return era
}

// Stats is the summary block for the progression header.
type Stats struct {
	TotalLevels        int
	UnlockedFacilities int
	TotalFacilities    int
	ProductionRate     float64
	TotalMultiplier    float64
	PrestigeLevel      int
	PrestigeMultiplier float64
	CurrentEra         int
}

func (v Valuer) Stats(st *progress.State) Stats {
	unlocked := 0
	for _, f := range v.Catalog.Facilities {
		if v.FacilityUnlockState(st, f) == StateUnlocked {
			unlocked++
		}
	}
	return Stats{
		TotalLevels:        st.TotalLevels(),
		UnlockedFacilities: unlocked,
		TotalFacilities:    len(v.Catalog.Facilities),
		ProductionRate:     v.ProductionRate(st),
		TotalMultiplier:    v.TotalMultiplier(st),
		PrestigeLevel:      st.PrestigeLevel,
		PrestigeMultiplier: st.PrestigeMultiplier,
		CurrentEra:         v.CurrentEra(st),
	}
}
