// Package server exposes the progression sync API consumed by
// store.Client. Snapshots are stored per user in the same JSON cache
// format the client writes locally.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ISSA-Motomu/Study-Guardian/internal/httpmw"
	"github.com/ISSA-Motomu/Study-Guardian/internal/store"
)

type Options struct {
	DataDir string
	Logger  *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = "data"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	cache, err := store.NewLocalCache(opts.DataDir)
	if err != nil {
		return nil, err
	}
	h := &handler{cache: cache, logger: opts.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "study-guardian",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/api/game/evolution/sync", h.sync)
	mux.HandleFunc("/api/game/evolution/", h.load)

	return httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRecover(opts.Logger),
	), nil
}

type handler struct {
	cache  *store.LocalCache
	logger *log.Logger
}

func (h *handler) load(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	userID := strings.TrimPrefix(r.URL.Path, "/api/game/evolution/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	snap, ok := h.cache.Load(userID)
	if !ok {
		writeError(w, http.StatusNotFound, "no progression for user")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// sync stores the pushed snapshot. A push carrying an older version
// than the stored record is not applied; the response reports the
// stored version so the client can pull and reconcile.
func (h *handler) sync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req store.SyncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if existing, ok := h.cache.Load(req.UserID); ok && existing.Version > req.Data.Version {
		writeJSON(w, http.StatusOK, store.SyncResponse{
			OK:       false,
			Version:  existing.Version,
			SyncedAt: time.Now().UTC().Unix(),
		})
		return
	}

	if err := h.cache.Save(req.UserID, req.Data); err != nil {
		h.logger.Printf("server: save snapshot user=%s: %v", req.UserID, err)
		writeError(w, http.StatusInternalServerError, "failed to store snapshot")
		return
	}
	writeJSON(w, http.StatusOK, store.SyncResponse{
		OK:       true,
		Version:  req.Data.Version,
		SyncedAt: time.Now().UTC().Unix(),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst *store.SyncRequest) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
