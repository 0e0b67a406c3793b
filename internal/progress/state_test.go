package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateZeroValued(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := New(now)

	assert.Zero(t, st.KnowledgePoints)
	assert.Zero(t, st.TotalEarned)
	assert.Equal(t, 1.0, st.PrestigeMultiplier)
	assert.Equal(t, now, st.LastActiveAt)
	assert.Equal(t, 0, st.LevelOf("notebook"))
	assert.Equal(t, 0, st.TotalLevels())
}

func TestCloneIsDeep(t *testing.T) {
	st := New(time.Now())
	st.FacilityLevels["notebook"] = 3
	st.PurchasedUpgrades = append(st.PurchasedUpgrades, "better_pencils")

	c := st.Clone()
	c.FacilityLevels["notebook"] = 99
	c.PurchasedUpgrades[0] = "mutated"

	assert.Equal(t, 3, st.FacilityLevels["notebook"])
	assert.Equal(t, "better_pencils", st.PurchasedUpgrades[0])
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := New(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	st.KnowledgePoints = 123.5
	st.TotalEarned = 4000
	st.LifetimeEarned = 9e9
	st.FacilityLevels["notebook"] = 12
	st.FacilityLevels["bookshelf"] = 4
	st.PurchasedUpgrades = []string{"better_pencils"}
	st.UnlockedAchievements = []string{"kp_100", "kp_1000"}
	st.PrestigeLevel = 2
	st.PrestigePoints = 31
	st.PrestigeMultiplier = 1.75
	st.Version = 7

	b, err := json.Marshal(st.Snapshot())
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(b, &snap))

	back := FromSnapshot(snap)
	assert.Equal(t, st.KnowledgePoints, back.KnowledgePoints)
	assert.Equal(t, st.FacilityLevels, back.FacilityLevels)
	assert.Equal(t, st.PurchasedUpgrades, back.PurchasedUpgrades)
	assert.Equal(t, st.UnlockedAchievements, back.UnlockedAchievements)
	assert.Equal(t, st.PrestigeLevel, back.PrestigeLevel)
	assert.Equal(t, st.PrestigePoints, back.PrestigePoints)
	assert.Equal(t, st.Version, back.Version)
}

func TestFromSnapshotNormalizesPartialRecords(t *testing.T) {
	back := FromSnapshot(Snapshot{KnowledgePoints: -5})

	assert.Zero(t, back.KnowledgePoints, "negative currency clamps to zero")
	assert.NotNil(t, back.FacilityLevels)
	assert.NotNil(t, back.PurchasedUpgrades)
	assert.Equal(t, 1.0, back.PrestigeMultiplier)
	assert.False(t, back.LastActiveAt.IsZero())
}

func TestSetMembership(t *testing.T) {
	st := New(time.Now())
	st.PurchasedUpgrades = append(st.PurchasedUpgrades, "global_1")
	st.UnlockedAchievements = append(st.UnlockedAchievements, "kp_100")

	assert.True(t, st.HasUpgrade("global_1"))
	assert.False(t, st.HasUpgrade("global_2"))
	assert.True(t, st.HasAchievement("kp_100"))
	assert.False(t, st.HasAchievement("kp_1000"))
}
