package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ISSA-Motomu/Study-Guardian/internal/config"
	"github.com/ISSA-Motomu/Study-Guardian/internal/engine"
	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
	"github.com/ISSA-Motomu/Study-Guardian/internal/store"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(Options{
		DataDir: t.TempDir(),
		Logger:  log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return h
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestSyncThenLoad(t *testing.T) {
	h := newTestHandler(t)

	snap := progress.Snapshot{KnowledgePoints: 42, TotalEarned: 100, Version: 3,
		FacilityLevels: map[string]int{"notebook": 5}}
	rec := doJSON(t, h, http.MethodPost, "/api/game/evolution/sync",
		store.SyncRequest{UserID: "alice", Data: snap})
	require.Equal(t, http.StatusOK, rec.Code)

	var ack store.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack.OK)
	assert.Equal(t, int64(3), ack.Version)

	rec = doJSON(t, h, http.MethodGet, "/api/game/evolution/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got progress.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 42.0, got.KnowledgePoints)
	assert.Equal(t, map[string]int{"notebook": 5}, got.FacilityLevels)
}

func TestLoadUnknownUser(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/api/game/evolution/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncRejectsStaleVersion(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/game/evolution/sync",
		store.SyncRequest{UserID: "alice", Data: progress.Snapshot{KnowledgePoints: 100, Version: 5}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/game/evolution/sync",
		store.SyncRequest{UserID: "alice", Data: progress.Snapshot{KnowledgePoints: 1, Version: 2}})
	require.Equal(t, http.StatusOK, rec.Code)
	var ack store.SyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.False(t, ack.OK)
	assert.Equal(t, int64(5), ack.Version) // stored record kept

	rec = doJSON(t, h, http.MethodGet, "/api/game/evolution/alice", nil)
	var got progress.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 100.0, got.KnowledgePoints)
}

func TestSyncValidation(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/game/evolution/sync",
		store.SyncRequest{UserID: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/game/evolution/sync",
		bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/game/evolution/sync", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// End to end through the real client.
func TestClientAgainstServer(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := store.NewClient(srv.URL)
	ctx := context.Background()

	_, ok, err := c.Load(ctx, "alice")
	require.NoError(t, err)
	require.False(t, ok)

	snap := progress.Snapshot{KnowledgePoints: 7, Version: 1}
	ack, err := c.Save(ctx, "alice", snap)
	require.NoError(t, err)
	assert.True(t, ack.OK)

	got, ok, err := c.Load(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7.0, got.KnowledgePoints)
}

// A client behind on versions must not treat its rejected push as
// synced; the coordinator pulls the server's record instead.
func TestStaleClientReconciles(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	rec := doJSON(t, h, http.MethodPost, "/api/game/evolution/sync",
		store.SyncRequest{UserID: "alice", Data: progress.Snapshot{KnowledgePoints: 500, Version: 10}})
	require.Equal(t, http.StatusOK, rec.Code)

	eng := engine.New(engine.Options{Balance: config.Default()})
	eng.Restore(progress.Snapshot{KnowledgePoints: 20, Version: 3})
	eng.AddPoints(10) // local mutation, now dirty at version 4
	require.True(t, eng.Dirty())

	cache, err := store.NewLocalCache(t.TempDir())
	require.NoError(t, err)
	coord := store.NewCoordinator(store.CoordinatorOptions{
		Engine: eng, Cache: cache, Remote: store.NewClient(srv.URL),
		UserID: "alice", Logger: log.New(io.Discard, "", 0),
	})
	require.NoError(t, coord.SyncNow(context.Background()))

	// The server kept its record and the engine converged on it.
	rec = doJSON(t, h, http.MethodGet, "/api/game/evolution/alice", nil)
	var remote progress.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &remote))
	assert.Equal(t, int64(10), remote.Version)
	assert.Equal(t, 500.0, remote.KnowledgePoints)

	got := eng.Snapshot()
	assert.Equal(t, int64(10), got.Version)
	assert.Equal(t, 500.0, got.KnowledgePoints)
	assert.False(t, eng.Dirty())
}
