package catalog

import "fmt"

// Catalog bundles the immutable definitions consulted by the valuation
// and engine packages. Construct via Default or Load; treat as read-only
// afterwards.
type Catalog struct {
	Facilities   []Facility    `yaml:"facilities" json:"facilities"`
	Upgrades     []Upgrade     `yaml:"upgrades" json:"upgrades"`
	Achievements []Achievement `yaml:"achievements" json:"achievements"`
	Tiers        []TierInfo    `yaml:"tiers" json:"tiers"`

	facilityIdx map[string]int
	upgradeIdx  map[string]int
}

// Default returns the built-in master catalog.
func Default() *Catalog {
	c := &Catalog{
		Facilities:   masterFacilities,
		Upgrades:     masterUpgrades,
		Achievements: masterAchievements,
		Tiers:        masterTiers,
	}
	c.buildIndex()
	return c
}

func (c *Catalog) buildIndex() {
	c.facilityIdx = make(map[string]int, len(c.Facilities))
	for i, f := range c.Facilities {
		c.facilityIdx[f.ID] = i
	}
	c.upgradeIdx = make(map[string]int, len(c.Upgrades))
	for i, u := range c.Upgrades {
		c.upgradeIdx[u.ID] = i
	}
}

// FacilityByID looks up a facility definition.
func (c *Catalog) FacilityByID(id string) (Facility, bool) {
	i, ok := c.facilityIdx[id]
	if !ok {
		return Facility{}, false
	}
	return c.Facilities[i], true
}

// UpgradeByID looks up an upgrade definition.
func (c *Catalog) UpgradeByID(id string) (Upgrade, bool) {
	i, ok := c.upgradeIdx[id]
	if !ok {
		return Upgrade{}, false
	}
	return c.Upgrades[i], true
}

// FacilitiesByTier returns facilities of one era, in catalog order.
func (c *Catalog) FacilitiesByTier(tier int) []Facility {
	var out []Facility
	for _, f := range c.Facilities {
		if f.Tier == tier {
			out = append(out, f)
		}
	}
	return out
}

// UpgradesUnlockedBy returns upgrades whose facility/level condition is
// satisfied by the given facility reaching the given level.
func (c *Catalog) UpgradesUnlockedBy(facilityID string, level int) []Upgrade {
	var out []Upgrade
	for _, u := range c.Upgrades {
		if u.Unlock.FacilityID == facilityID && level >= u.Unlock.Level {
			out = append(out, u)
		}
	}
	return out
}

// AchievementByID looks up an achievement definition.
func (c *Catalog) AchievementByID(id string) (Achievement, bool) {
	for _, a := range c.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// AchievementsOf returns achievements with the given condition kind.
func (c *Catalog) AchievementsOf(kind ConditionKind) []Achievement {
	var out []Achievement
	for _, a := range c.Achievements {
		if a.Condition == kind {
			out = append(out, a)
		}
	}
	return out
}

// TierName returns the era name, or "" for an unknown tier.
func (c *Catalog) TierName(tier int) string {
	for _, t := range c.Tiers {
		if t.Tier == tier {
			return t.Name
		}
	}
	return ""
}

// Validate checks referential integrity. Violations are programming
// errors in the master data (or a bad catalog file), caught by tests
// rather than handled at runtime.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Facilities))
	for _, f := range c.Facilities {
		if f.ID == "" {
			return fmt.Errorf("facility with empty id")
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate facility id %q", f.ID)
		}
		seen[f.ID] = true
		if f.Tier < MinTier || f.Tier > MaxTier {
			return fmt.Errorf("facility %q: tier %d out of range", f.ID, f.Tier)
		}
		if f.BaseCost <= 0 {
			return fmt.Errorf("facility %q: base cost must be positive", f.ID)
		}
		if f.BaseProduction <= 0 {
			return fmt.Errorf("facility %q: base production must be positive", f.ID)
		}
		if f.UnlockAt < 0 {
			return fmt.Errorf("facility %q: negative unlock threshold", f.ID)
		}
	}

	seenUp := make(map[string]bool, len(c.Upgrades))
	for _, u := range c.Upgrades {
		if u.ID == "" {
			return fmt.Errorf("upgrade with empty id")
		}
		if seenUp[u.ID] {
			return fmt.Errorf("duplicate upgrade id %q", u.ID)
		}
		seenUp[u.ID] = true
		if u.Cost <= 0 {
			return fmt.Errorf("upgrade %q: cost must be positive", u.ID)
		}
		if u.Unlock.FacilityID != "" {
			if !seen[u.Unlock.FacilityID] {
				return fmt.Errorf("upgrade %q: unlock references unknown facility %q", u.ID, u.Unlock.FacilityID)
			}
		} else if u.Unlock.TotalKP <= 0 {
			return fmt.Errorf("upgrade %q: unlock needs a facility or a total-KP threshold", u.ID)
		}
		switch u.Effect.Kind {
		case EffectFacility:
			if !seen[u.Effect.TargetFacility] {
				return fmt.Errorf("upgrade %q: effect targets unknown facility %q", u.ID, u.Effect.TargetFacility)
			}
		case EffectTier:
			if u.Effect.TargetTier < MinTier || u.Effect.TargetTier > MaxTier {
				return fmt.Errorf("upgrade %q: effect targets tier %d out of range", u.ID, u.Effect.TargetTier)
			}
		case EffectGlobal:
			// no target
		default:
			return fmt.Errorf("upgrade %q: unknown effect kind %q", u.ID, u.Effect.Kind)
		}
		if u.Effect.Factor <= 0 {
			return fmt.Errorf("upgrade %q: effect factor must be positive", u.ID)
		}
	}

	seenAch := make(map[string]bool, len(c.Achievements))
	for _, a := range c.Achievements {
		if a.ID == "" {
			return fmt.Errorf("achievement with empty id")
		}
		if seenAch[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seenAch[a.ID] = true
		switch a.Condition {
		case CondTotalKP, CondLifetimeKP, CondTotalLevels, CondPrestigeCount:
		default:
			return fmt.Errorf("achievement %q: unknown condition kind %q", a.ID, a.Condition)
		}
		if a.Threshold <= 0 {
			return fmt.Errorf("achievement %q: threshold must be positive", a.ID)
		}
	}

	return nil
}
