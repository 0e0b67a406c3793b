package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

func TestLocalCacheRoundTrip(t *testing.T) {
	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	snap := progress.Snapshot{
		KnowledgePoints: 123.5,
		TotalEarned:     500,
		FacilityLevels:  map[string]int{"notebook": 7},
		Upgrades:        []string{"better_pencils"},
		Version:         4,
	}
	require.NoError(t, cache.Save("alice", snap))

	got, ok := cache.Load("alice")
	require.True(t, ok)
	assert.Equal(t, 123.5, got.KnowledgePoints)
	assert.Equal(t, map[string]int{"notebook": 7}, got.FacilityLevels)
	assert.Equal(t, int64(4), got.Version)
	assert.False(t, got.SavedAt.IsZero())
}

func TestLocalCacheMissingIsAbsent(t *testing.T) {
	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	_, ok := cache.Load("nobody")
	assert.False(t, ok)
}

func TestLocalCacheCorruptIsAbsent(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewLocalCache(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "evolution_bob.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := cache.Load("bob")
	assert.False(t, ok)
}

func TestLocalCacheIsolatesUsers(t *testing.T) {
	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Save("alice", progress.Snapshot{KnowledgePoints: 1}))
	require.NoError(t, cache.Save("bob", progress.Snapshot{KnowledgePoints: 2}))

	a, ok := cache.Load("alice")
	require.True(t, ok)
	b, ok := cache.Load("bob")
	require.True(t, ok)
	assert.Equal(t, 1.0, a.KnowledgePoints)
	assert.Equal(t, 2.0, b.KnowledgePoints)
}

func TestLocalCacheDelete(t *testing.T) {
	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Save("alice", progress.Snapshot{}))
	require.NoError(t, cache.Delete("alice"))
	_, ok := cache.Load("alice")
	assert.False(t, ok)

	// Deleting an absent record is fine.
	require.NoError(t, cache.Delete("alice"))
}

func TestSanitizeID(t *testing.T) {
	assert.Equal(t, "guest", sanitizeID(""))
	assert.Equal(t, "guest", sanitizeID("   "))
	assert.Equal(t, "alice-42_x", sanitizeID("alice-42_x"))
	assert.Equal(t, "---etc-passwd", sanitizeID("../etc/passwd"))
}
