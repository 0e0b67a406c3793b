package config

import "time"

// Balance holds progression balance configuration. All thresholds that
// the valuation engine consults live here so they can be tuned without
// touching formula code.
type Balance struct {
	// Facility cost curve
	CostGrowthRate float64 `json:"cost_growth_rate"`

	// Milestone schedule: production doubles at each level in the list
	Milestones      []int   `json:"milestones"`
	MilestoneFactor float64 `json:"milestone_factor"`

	// Unlock visibility ladder, as fractions of a facility's threshold
	HintFraction   float64 `json:"hint_fraction"`
	RevealFraction float64 `json:"reveal_fraction"`

	// Study conversion: flat bonus rate per unit of owned base production
	StudyBonusPerProduction float64 `json:"study_bonus_per_production"`

	// Prestige
	PrestigeUnlockKP float64 `json:"prestige_unlock_kp"`
	PrestigeExponent float64 `json:"prestige_exponent"`
	PrestigeLogScale float64 `json:"prestige_log_scale"`

	// Offline accrual
	OfflineCap  time.Duration `json:"offline_cap"`
	OfflineRate float64       `json:"offline_rate"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		CostGrowthRate:          1.15,
		Milestones:              []int{10, 25, 50, 100, 150, 200, 250, 300, 350, 400},
		MilestoneFactor:         2,
		HintFraction:            0.30,
		RevealFraction:          0.70,
		StudyBonusPerProduction: 0.01,
		PrestigeUnlockKP:        1e9,
		PrestigeExponent:        1.5,
		PrestigeLogScale:        0.5,
		OfflineCap:              8 * time.Hour,
		OfflineRate:             0.5,
	}
}
