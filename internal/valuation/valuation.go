// Package valuation computes costs, production rates and unlock
// visibility from the catalog and a progression state snapshot. Every
// function here is pure; mutation lives in the engine package.
package valuation

import (
	"math"

	"github.com/ISSA-Motomu/Study-Guardian/internal/catalog"
	"github.com/ISSA-Motomu/Study-Guardian/internal/config"
	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

// Valuer binds the immutable inputs. Zero-cost to copy.
type Valuer struct {
	Catalog *catalog.Catalog
	Balance config.Balance
}

func New(cat *catalog.Catalog, bal config.Balance) Valuer {
	return Valuer{Catalog: cat, Balance: bal}
}

// Cost returns the price of the next level: floor(base * rate^level).
// The exponential curve keeps each purchase meaningfully more expensive;
// milestone doubling counteracts late-game tedium.
func (v Valuer) Cost(baseCost float64, level int) float64 {
	return math.Floor(baseCost * math.Pow(v.Balance.CostGrowthRate, float64(level)))
}

// MilestoneBonus is a step function: the bonus doubles at each milestone
// level the facility has reached or passed. Level 30 has passed {10, 25},
// so the bonus is 4.
func (v Valuer) MilestoneBonus(level int) float64 {
	bonus := 1.0
	for _, m := range v.Balance.Milestones {
		if level >= m {
			bonus *= v.Balance.MilestoneFactor
		}
	}
	return bonus
}

// Milestone describes the next milestone ahead of a level.
type Milestone struct {
	Target   int
	Progress float64 // percent toward Target from the previous milestone
	Bonus    float64 // bonus once Target is reached
}

// NextMilestone returns the milestone a facility is working toward, or
// false once all milestones are passed.
func (v Valuer) NextMilestone(level int) (Milestone, bool) {
	reached := 0
	for i, m := range v.Balance.Milestones {
		if level >= m {
			reached++
			continue
		}
		prev := 0
		if i > 0 {
			prev = v.Balance.Milestones[i-1]
		}
		progress := float64(level-prev) / float64(m-prev) * 100
		return Milestone{
			Target:   m,
			Progress: math.Min(progress, 100),
			Bonus:    math.Pow(v.Balance.MilestoneFactor, float64(reached+1)),
		}, true
	}
	return Milestone{}, false
}

// UpgradeMultiplier multiplies the factors of every purchased upgrade
// that targets the facility directly, targets its tier, or applies
// globally. Composition is commutative across all three kinds.
func (v Valuer) UpgradeMultiplier(st *progress.State, f catalog.Facility) float64 {
	mult := 1.0
	for _, id := range st.PurchasedUpgrades {
		u, ok := v.Catalog.UpgradeByID(id)
		if !ok {
			continue
		}
		switch u.Effect.Kind {
		case catalog.EffectFacility:
			if u.Effect.TargetFacility == f.ID {
				mult *= u.Effect.Factor
			}
		case catalog.EffectTier:
			if u.Effect.TargetTier == f.Tier {
				mult *= u.Effect.Factor
			}
		case catalog.EffectGlobal:
			mult *= u.Effect.Factor
		}
	}
	return mult
}

// FacilityProduction is base * level * upgrades * prestige * milestone,
// and exactly 0 at level 0.
func (v Valuer) FacilityProduction(st *progress.State, f catalog.Facility) float64 {
	level := st.LevelOf(f.ID)
	if level <= 0 {
		return 0
	}
	return f.BaseProduction * float64(level) *
		v.UpgradeMultiplier(st, f) * st.PrestigeMultiplier * v.MilestoneBonus(level)
}

// ProductionRate sums per-facility production across owned facilities.
func (v Valuer) ProductionRate(st *progress.State) float64 {
	rate := 0.0
	for _, f := range v.Catalog.Facilities {
		rate += v.FacilityProduction(st, f)
	}
	return rate
}

// TotalMultiplier converts real-world study minutes into KP. It is a
// flat bonus rate layered on a base of 1.0 and is deliberately
// independent of ProductionRate: owned base production adds
// StudyBonusPerProduction per level, then global upgrade factors and the
// prestige multiplier apply.
func (v Valuer) TotalMultiplier(st *progress.State) float64 {
	mult := 1.0
	for _, f := range v.Catalog.Facilities {
		if level := st.LevelOf(f.ID); level > 0 {
			mult += f.BaseProduction * float64(level) * v.Balance.StudyBonusPerProduction
		}
	}
	for _, id := range st.PurchasedUpgrades {
		u, ok := v.Catalog.UpgradeByID(id)
		if ok && u.Effect.Kind == catalog.EffectGlobal {
			mult *= u.Effect.Factor
		}
	}
	return mult * st.PrestigeMultiplier
}

// UnlockState is the four-step visibility ladder for a facility.
type UnlockState string

const (
	StateLocked   UnlockState = "locked"
	StateHint     UnlockState = "hint"
	StateRevealed UnlockState = "revealed"
	StateUnlocked UnlockState = "unlocked"
)

// FacilityUnlockState classifies a facility by how close the lifetime
// counter is to its threshold.
func (v Valuer) FacilityUnlockState(st *progress.State, f catalog.Facility) UnlockState {
	switch {
	case st.TotalEarned >= f.UnlockAt:
		return StateUnlocked
	case st.TotalEarned >= f.UnlockAt*v.Balance.RevealFraction:
		return StateRevealed
	case st.TotalEarned >= f.UnlockAt*v.Balance.HintFraction:
		return StateHint
	default:
		return StateLocked
	}
}

// UpgradeUnlocked reports whether the upgrade's condition is satisfied.
func (v Valuer) UpgradeUnlocked(st *progress.State, u catalog.Upgrade) bool {
	if u.Unlock.FacilityID != "" {
		return st.LevelOf(u.Unlock.FacilityID) >= u.Unlock.Level
	}
	return st.TotalEarned >= u.Unlock.TotalKP
}

// PotentialPrestigePoints is 0 below the unlock threshold, otherwise
// floor(log10(totalEarned)^exponent).
func (v Valuer) PotentialPrestigePoints(st *progress.State) float64 {
	if st.TotalEarned < v.Balance.PrestigeUnlockKP {
		return 0
	}
	return math.Floor(math.Pow(math.Log10(st.TotalEarned), v.Balance.PrestigeExponent))
}

// PrestigeMultiplier computes the permanent bonus from banked prestige
// points: 1 + log10(points+1) * logScale.
func (v Valuer) PrestigeMultiplier(prestigePoints float64) float64 {
	return 1 + math.Log10(prestigePoints+1)*v.Balance.PrestigeLogScale
}
