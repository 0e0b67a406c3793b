package catalog

// Facility is a purchasable, levelable production unit. Definitions are
// immutable; player levels live in the progression state.
type Facility struct {
	ID             string  `yaml:"id" json:"id"`
	Name           string  `yaml:"name" json:"name"`
	Description    string  `yaml:"description,omitempty" json:"description,omitempty"`
	BaseCost       float64 `yaml:"base_cost" json:"base_cost"`
	BaseProduction float64 `yaml:"base_production" json:"base_production"`
	UnlockAt       float64 `yaml:"unlock_at" json:"unlock_at"`
	Tier           int     `yaml:"tier" json:"tier"`
}

const (
	MinTier = 1
	MaxTier = 6
)

// TierInfo carries display metadata for an era.
type TierInfo struct {
	Tier int    `yaml:"tier" json:"tier"`
	Name string `yaml:"name" json:"name"`
}
