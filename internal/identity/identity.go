// Package identity resolves which user's progression this process
// operates on. An authenticated id comes from the environment; without
// one a stable per-install guest id is minted and cached on disk so
// offline progress survives restarts under the same identity.
package identity

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const envUserID = "EVOLUTION_USER_ID"

// Provider yields the current user id.
type Provider interface {
	UserID() string
}

// Static is a fixed user id, handy for tests and single-user tools.
type Static string

func (s Static) UserID() string { return string(s) }

// Resolve returns the configured user id, or the cached guest id,
// minting and caching one on first run. A cache write failure degrades
// to a process-lifetime guest id.
func Resolve(dataDir string) Provider {
	if id := strings.TrimSpace(os.Getenv(envUserID)); id != "" {
		return Static(id)
	}
	return Static(guestID(dataDir))
}

func guestID(dataDir string) string {
	path := filepath.Join(dataDir, "guest_id")
	if b, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id
		}
	}
	id := "guest-" + uuid.NewString()
	if err := os.MkdirAll(dataDir, 0o755); err == nil {
		_ = os.WriteFile(path, []byte(id+"\n"), 0o644)
	}
	return id
}
