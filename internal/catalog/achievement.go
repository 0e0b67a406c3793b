package catalog

// ConditionKind selects which progression aggregate an achievement
// threshold is compared against.
type ConditionKind string

const (
	// CondTotalKP compares against the current cycle's earnings, which
	// reset on prestige; CondLifetimeKP against all-time earnings
	// across every cycle.
	CondTotalKP       ConditionKind = "total_kp"
	CondLifetimeKP    ConditionKind = "lifetime_kp"
	CondTotalLevels   ConditionKind = "total_levels"
	CondPrestigeCount ConditionKind = "prestige_count"
)

// Achievement unlocks exactly once and never reverses.
type Achievement struct {
	ID        string        `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	Condition ConditionKind `yaml:"condition" json:"condition"`
	Threshold float64       `yaml:"threshold" json:"threshold"`
}
