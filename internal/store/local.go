// Package store persists progression snapshots: a local JSON cache for
// instant restarts and an HTTP client for the remote sync endpoint. The
// Coordinator ties both to the engine.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

// LocalCache keeps one snapshot file per user under dataDir. A missing,
// unreadable, or corrupt file is reported as absent, never as an error:
// the cache is a convenience copy, the engine starts fresh without it.
type LocalCache struct {
	mu      sync.Mutex
	dataDir string
}

func NewLocalCache(dataDir string) (*LocalCache, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalCache{dataDir: dataDir}, nil
}

func (c *LocalCache) path(userID string) string {
	return filepath.Join(c.dataDir, "evolution_"+sanitizeID(userID)+".json")
}

// Load returns the cached snapshot for the user, or ok=false when none
// is usable.
func (c *LocalCache) Load(userID string) (progress.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := os.ReadFile(c.path(userID))
	if err != nil {
		return progress.Snapshot{}, false
	}
	var snap progress.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return progress.Snapshot{}, false
	}
	return snap, true
}

// Save writes the snapshot, stamping SavedAt. The write replaces the
// previous record wholesale.
func (c *LocalCache) Save(userID string, snap progress.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap.SavedAt = time.Now().UTC()
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(userID), b, 0o644)
}

// Delete removes the cached record; absence is not an error.
func (c *LocalCache) Delete(userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.path(userID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// sanitizeID keeps user identifiers filesystem-safe.
func sanitizeID(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "guest"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, userID)
}
