package store

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

// fakeEngine records what the coordinator does to it.
type fakeEngine struct {
	restored []progress.Snapshot
	snap     progress.Snapshot
	dirty    bool
	syncedAt time.Time
}

func (f *fakeEngine) Restore(snap progress.Snapshot) {
	f.restored = append(f.restored, snap)
	f.snap = snap
	f.dirty = false
}
func (f *fakeEngine) Snapshot() progress.Snapshot { return f.snap }
func (f *fakeEngine) Dirty() bool                 { return f.dirty }
func (f *fakeEngine) MarkSynced(version int64, at time.Time) {
	f.syncedAt = at
	if f.snap.Version == version {
		f.dirty = false
	}
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func syncServer(t *testing.T, remoteSnap *progress.Snapshot, pushes *[]SyncRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			if remoteSnap == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(*remoteSnap)
		case r.Method == http.MethodPost:
			var req SyncRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			*pushes = append(*pushes, req)
			if remoteSnap != nil && req.Data.Version < remoteSnap.Version {
				json.NewEncoder(w).Encode(SyncResponse{OK: false, Version: remoteSnap.Version})
				return
			}
			if remoteSnap != nil {
				*remoteSnap = req.Data
			}
			json.NewEncoder(w).Encode(SyncResponse{OK: true, Version: req.Data.Version})
		}
	}))
}

func TestInitializeRemoteWins(t *testing.T) {
	remote := &progress.Snapshot{KnowledgePoints: 100, Version: 5}
	var pushes []SyncRequest
	srv := syncServer(t, remote, &pushes)
	defer srv.Close()

	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cache.Save("alice", progress.Snapshot{KnowledgePoints: 50, Version: 3}))

	eng := &fakeEngine{}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})
	c.Initialize(context.Background())

	require.Len(t, eng.restored, 1)
	assert.Equal(t, 100.0, eng.restored[0].KnowledgePoints)
	assert.Empty(t, pushes)

	// The winning remote record replaced the local cache.
	cached, ok := cache.Load("alice")
	require.True(t, ok)
	assert.Equal(t, 100.0, cached.KnowledgePoints)
	assert.Equal(t, int64(5), cached.Version)
}

func TestInitializeNewerLocalWinsAndPushes(t *testing.T) {
	remote := &progress.Snapshot{KnowledgePoints: 100, Version: 5}
	var pushes []SyncRequest
	srv := syncServer(t, remote, &pushes)
	defer srv.Close()

	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)
	local := progress.Snapshot{KnowledgePoints: 250, Version: 9}
	require.NoError(t, cache.Save("alice", local))

	eng := &fakeEngine{snap: local}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})
	c.Initialize(context.Background())

	require.Len(t, eng.restored, 1)
	assert.Equal(t, 250.0, eng.restored[0].KnowledgePoints)
	require.Len(t, pushes, 1)
	assert.Equal(t, int64(9), pushes[0].Data.Version)
	assert.False(t, eng.syncedAt.IsZero())
}

func TestInitializeRemoteDownFallsBackToLocal(t *testing.T) {
	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cache.Save("alice", progress.Snapshot{KnowledgePoints: 50, Version: 3}))

	eng := &fakeEngine{}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: NewClient("http://127.0.0.1:1"),
		UserID: "alice", Logger: quietLogger(),
	})
	c.Initialize(context.Background())

	require.Len(t, eng.restored, 1)
	assert.Equal(t, 50.0, eng.restored[0].KnowledgePoints)
}

func TestInitializeNothingAnywhere(t *testing.T) {
	var pushes []SyncRequest
	srv := syncServer(t, nil, &pushes)
	defer srv.Close()

	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	eng := &fakeEngine{}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})
	c.Initialize(context.Background())

	assert.Empty(t, eng.restored) // fresh zero state stands
}

func TestInitializeLocalOnly(t *testing.T) {
	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cache.Save("alice", progress.Snapshot{KnowledgePoints: 5}))

	eng := &fakeEngine{}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, UserID: "alice", Logger: quietLogger(),
	})
	c.Initialize(context.Background())

	require.Len(t, eng.restored, 1)
	assert.Equal(t, 5.0, eng.restored[0].KnowledgePoints)
}

func TestSyncNowGatedOnDirty(t *testing.T) {
	var pushes []SyncRequest
	srv := syncServer(t, nil, &pushes)
	defer srv.Close()

	eng := &fakeEngine{snap: progress.Snapshot{Version: 2}}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})

	require.NoError(t, c.SyncNow(context.Background()))
	assert.Empty(t, pushes) // clean state, nothing to push

	eng.dirty = true
	require.NoError(t, c.SyncNow(context.Background()))
	require.Len(t, pushes, 1)
	assert.False(t, eng.dirty) // marked synced on success
}

func TestSyncNowFailureLeavesDirty(t *testing.T) {
	eng := &fakeEngine{dirty: true}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Remote: NewClient("http://127.0.0.1:1"),
		UserID: "alice", Logger: quietLogger(),
	})

	assert.Error(t, c.SyncNow(context.Background()))
	assert.True(t, eng.dirty)
}

func TestSyncNowRejectedPushPullsRemote(t *testing.T) {
	remote := &progress.Snapshot{KnowledgePoints: 500, Version: 10}
	var pushes []SyncRequest
	srv := syncServer(t, remote, &pushes)
	defer srv.Close()

	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	eng := &fakeEngine{snap: progress.Snapshot{KnowledgePoints: 30, Version: 3}, dirty: true}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})
	require.NoError(t, c.SyncNow(context.Background()))

	// The push was attempted and refused; the server kept its record.
	require.Len(t, pushes, 1)
	assert.Equal(t, int64(10), remote.Version)
	assert.Equal(t, 500.0, remote.KnowledgePoints)

	// The newer remote record replaced engine state and local cache,
	// and the rejected snapshot was never marked synced.
	require.Len(t, eng.restored, 1)
	assert.Equal(t, int64(10), eng.restored[0].Version)
	assert.True(t, eng.syncedAt.IsZero())
	cached, ok := cache.Load("alice")
	require.True(t, ok)
	assert.Equal(t, 500.0, cached.KnowledgePoints)
}

func TestRejectedPushKeepsDirtyWhenPullFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(SyncResponse{OK: false, Version: 10})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	eng := &fakeEngine{snap: progress.Snapshot{Version: 3}, dirty: true}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})

	assert.Error(t, c.SyncNow(context.Background()))
	assert.True(t, eng.dirty)
	assert.Empty(t, eng.restored)
}

func TestFlushWritesLocalAndPushes(t *testing.T) {
	var pushes []SyncRequest
	srv := syncServer(t, nil, &pushes)
	defer srv.Close()

	cache, err := NewLocalCache(t.TempDir())
	require.NoError(t, err)

	eng := &fakeEngine{snap: progress.Snapshot{KnowledgePoints: 77, Version: 8}}
	c := NewCoordinator(CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: NewClient(srv.URL),
		UserID: "alice", Logger: quietLogger(),
	})
	c.Flush(context.Background())

	got, ok := cache.Load("alice")
	require.True(t, ok)
	assert.Equal(t, 77.0, got.KnowledgePoints)
	require.Len(t, pushes, 1)
	assert.Equal(t, int64(8), pushes[0].Data.Version)
}
