package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Facilities, 60)
	assert.Len(t, c.Upgrades, 11)
	assert.Len(t, c.Tiers, 6)

	// Every upgrade unlock/effect target must resolve.
	for _, u := range c.Upgrades {
		if u.Unlock.FacilityID != "" {
			_, ok := c.FacilityByID(u.Unlock.FacilityID)
			assert.True(t, ok, "upgrade %s unlock facility", u.ID)
		}
		if u.Effect.Kind == EffectFacility {
			_, ok := c.FacilityByID(u.Effect.TargetFacility)
			assert.True(t, ok, "upgrade %s effect facility", u.ID)
		}
	}
}

func TestFacilityLookups(t *testing.T) {
	c := Default()

	f, ok := c.FacilityByID("notebook")
	require.True(t, ok)
	assert.Equal(t, 10.0, f.BaseCost)
	assert.Equal(t, 0.1, f.BaseProduction)
	assert.Equal(t, 1, f.Tier)

	_, ok = c.FacilityByID("holodeck")
	assert.False(t, ok)

	tier1 := c.FacilitiesByTier(1)
	assert.Len(t, tier1, 10)
	for _, f := range tier1 {
		assert.Equal(t, 1, f.Tier)
	}

	assert.Equal(t, "Solitary Dawn", c.TierName(1))
	assert.Equal(t, "", c.TierName(7))
}

func TestUpgradesUnlockedBy(t *testing.T) {
	c := Default()

	ups := c.UpgradesUnlockedBy("notebook", 10)
	require.Len(t, ups, 1)
	assert.Equal(t, "better_pencils", ups[0].ID)

	assert.Empty(t, c.UpgradesUnlockedBy("notebook", 9))
}

func TestAchievementsOf(t *testing.T) {
	c := Default()
	assert.Len(t, c.AchievementsOf(CondPrestigeCount), 3)
	assert.Len(t, c.AchievementsOf(CondTotalLevels), 3)
	assert.Len(t, c.AchievementsOf(CondLifetimeKP), 1)

	a, ok := c.AchievementByID("kp_100")
	require.True(t, ok)
	assert.Equal(t, CondTotalKP, a.Condition)
	_, ok = c.AchievementByID("kp_0")
	assert.False(t, ok)
}

func TestValidateRejectsDanglingReferences(t *testing.T) {
	c := &Catalog{
		Facilities: []Facility{
			{ID: "a", BaseCost: 10, BaseProduction: 1, Tier: 1},
		},
		Upgrades: []Upgrade{
			{ID: "u", Cost: 5, Unlock: UpgradeUnlock{TotalKP: 1},
				Effect: Effect{Kind: EffectFacility, TargetFacility: "missing", Factor: 2}},
		},
	}
	c.buildIndex()
	assert.Error(t, c.Validate())
}

func TestValidateRejectsUnknownEffectKind(t *testing.T) {
	c := &Catalog{
		Facilities: []Facility{
			{ID: "a", BaseCost: 10, BaseProduction: 1, Tier: 1},
		},
		Upgrades: []Upgrade{
			{ID: "u", Cost: 5, Unlock: UpgradeUnlock{TotalKP: 1},
				Effect: Effect{Kind: "divide", Factor: 2}},
		},
	}
	c.buildIndex()
	assert.Error(t, c.Validate())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	body := `
facilities:
  - id: chalkboard
    name: Chalkboard
    base_cost: 12
    base_production: 0.2
    unlock_at: 0
    tier: 1
upgrades:
  - id: colored_chalk
    name: Colored Chalk
    cost: 90
    unlock:
      facility: chalkboard
      level: 5
    effect:
      kind: facility
      target_facility: chalkboard
      factor: 2
achievements:
  - id: kp_50
    name: Warm Up
    condition: total_kp
    threshold: 50
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	f, ok := c.FacilityByID("chalkboard")
	require.True(t, ok)
	assert.Equal(t, 12.0, f.BaseCost)
	// Default tier names apply when the file omits them.
	assert.Equal(t, "Solitary Dawn", c.TierName(1))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
