package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

// ErrStaleSnapshot is returned by Save when the server already holds a
// newer version and did not apply the push.
var ErrStaleSnapshot = errors.New("store: remote holds a newer snapshot")

// SyncRequest is the payload pushed to the sync endpoint.
type SyncRequest struct {
	UserID string            `json:"user_id"`
	Data   progress.Snapshot `json:"data"`
}

// SyncResponse acknowledges a push.
type SyncResponse struct {
	OK       bool  `json:"ok"`
	Version  int64 `json:"version"`
	SyncedAt int64 `json:"synced_at"`
}

// Client talks to the remote progression endpoint. A nil Client means
// the app runs local-only.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches the remote snapshot. ok=false with a nil error means the
// server holds no record for this user.
func (c *Client) Load(ctx context.Context, userID string) (progress.Snapshot, bool, error) {
	endpoint := c.baseURL + "/api/game/evolution/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return progress.Snapshot{}, false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return progress.Snapshot{}, false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var snap progress.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			return progress.Snapshot{}, false, fmt.Errorf("decode remote snapshot: %w", err)
		}
		return snap, true, nil
	case http.StatusNotFound:
		return progress.Snapshot{}, false, nil
	default:
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return progress.Snapshot{}, false, fmt.Errorf("remote load: unexpected status %d", resp.StatusCode)
	}
}

// Save pushes the snapshot to the sync endpoint and returns the
// server's ack. A rejected push (the server holds a newer version and
// kept its record) comes back as ErrStaleSnapshot with the ack carrying
// the server's version, so the caller can pull and reconcile.
func (c *Client) Save(ctx context.Context, userID string, snap progress.Snapshot) (SyncResponse, error) {
	body, err := json.Marshal(SyncRequest{UserID: userID, Data: snap})
	if err != nil {
		return SyncResponse{}, err
	}
	endpoint := c.baseURL + "/api/game/evolution/sync"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return SyncResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return SyncResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return SyncResponse{}, fmt.Errorf("remote save: unexpected status %d", resp.StatusCode)
	}
	var ack SyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return SyncResponse{}, fmt.Errorf("decode sync ack: %w", err)
	}
	if !ack.OK {
		return ack, fmt.Errorf("%w: server version %d, pushed %d", ErrStaleSnapshot, ack.Version, snap.Version)
	}
	return ack, nil
}
