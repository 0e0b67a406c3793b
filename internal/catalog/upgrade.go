package catalog

// EffectKind selects how an upgrade's factor is applied. The set is
// closed: every consumer switches over all three kinds and Validate
// rejects anything else.
type EffectKind string

const (
	EffectFacility EffectKind = "facility"
	EffectTier     EffectKind = "tier"
	EffectGlobal   EffectKind = "global"
)

// Effect is a permanent multiplicative bonus. Exactly one of
// TargetFacility / TargetTier is meaningful, selected by Kind;
// EffectGlobal uses neither.
type Effect struct {
	Kind           EffectKind `yaml:"kind" json:"kind"`
	TargetFacility string     `yaml:"target_facility,omitempty" json:"target_facility,omitempty"`
	TargetTier     int        `yaml:"target_tier,omitempty" json:"target_tier,omitempty"`
	Factor         float64    `yaml:"factor" json:"factor"`
}

// UpgradeUnlock gates visibility of an upgrade. A non-empty FacilityID
// means "facility at level"; otherwise TotalKP applies.
type UpgradeUnlock struct {
	FacilityID string  `yaml:"facility,omitempty" json:"facility,omitempty"`
	Level      int     `yaml:"level,omitempty" json:"level,omitempty"`
	TotalKP    float64 `yaml:"total_kp,omitempty" json:"total_kp,omitempty"`
}

// Upgrade is a one-time purchase applying its Effect forever (until a
// prestige reset clears the purchased set).
type Upgrade struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Cost        float64       `yaml:"cost" json:"cost"`
	Unlock      UpgradeUnlock `yaml:"unlock" json:"unlock"`
	Effect      Effect        `yaml:"effect" json:"effect"`
}
