package store

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
)

// Progression is the slice of the engine the coordinator drives.
// MarkSynced names the snapshot version that was pushed, so a mutation
// that lands while the push is in flight keeps its dirty flag.
type Progression interface {
	Restore(progress.Snapshot)
	Snapshot() progress.Snapshot
	Dirty() bool
	MarkSynced(version int64, at time.Time)
}

type CoordinatorOptions struct {
	Engine   Progression
	Cache    *LocalCache
	Remote   *Client // nil runs local-only
	UserID   string
	Interval time.Duration
	Logger   *log.Logger
}

// Coordinator owns the persistence flow: restore on startup, local
// write-through after every mutation (it implements the engine's saver
// hook), and a periodic remote push gated on the dirty flag. Sync
// failures are logged and retried on the next tick; they never block
// gameplay.
type Coordinator struct {
	eng      Progression
	cache    *LocalCache
	remote   *Client
	userID   string
	interval time.Duration
	logger   *log.Logger
}

func NewCoordinator(opts CoordinatorOptions) *Coordinator {
	if opts.Interval <= 0 {
		opts.Interval = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Coordinator{
		eng:      opts.Engine,
		cache:    opts.Cache,
		remote:   opts.Remote,
		userID:   opts.UserID,
		interval: opts.Interval,
		logger:   opts.Logger,
	}
}

// SaveLocal implements the engine's saver hook. Write failures are
// logged, never surfaced: the mutation already happened.
func (c *Coordinator) SaveLocal(snap progress.Snapshot) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Save(c.userID, snap); err != nil {
		c.logger.Printf("store: local save failed user=%s: %v", c.userID, err)
	}
}

// Initialize restores the freshest known snapshot into the engine. The
// remote record wins unless the local cache carries a strictly higher
// version (progress made offline that never synced); in that case the
// local record is restored and immediately pushed. Remote failures
// degrade to the local cache, and with neither record the engine's
// zero-valued state stands.
func (c *Coordinator) Initialize(ctx context.Context) {
	local, haveLocal := progress.Snapshot{}, false
	if c.cache != nil {
		local, haveLocal = c.cache.Load(c.userID)
	}

	if c.remote == nil {
		if haveLocal {
			c.eng.Restore(local)
		}
		return
	}

	remote, haveRemote, err := c.remote.Load(ctx, c.userID)
	if err != nil {
		c.logger.Printf("store: remote load failed user=%s, using local cache: %v", c.userID, err)
	}

	switch {
	case haveRemote && haveLocal && local.Version > remote.Version:
		c.eng.Restore(local)
		c.push(ctx)
	case haveRemote:
		c.eng.Restore(remote)
		c.SaveLocal(remote)
	case haveLocal:
		c.eng.Restore(local)
		c.push(ctx)
	}
}

// SyncNow pushes the current snapshot when the state is dirty.
func (c *Coordinator) SyncNow(ctx context.Context) error {
	if c.remote == nil || !c.eng.Dirty() {
		return nil
	}
	return c.push(ctx)
}

func (c *Coordinator) push(ctx context.Context) error {
	snap := c.eng.Snapshot()
	ack, err := c.remote.Save(ctx, c.userID, snap)
	if errors.Is(err, ErrStaleSnapshot) {
		c.logger.Printf("store: push rejected user=%s version=%d remote=%d, pulling remote", c.userID, snap.Version, ack.Version)
		return c.pull(ctx)
	}
	if err != nil {
		c.logger.Printf("store: sync failed user=%s version=%d: %v", c.userID, snap.Version, err)
		return err
	}
	c.eng.MarkSynced(snap.Version, time.Now().UTC())
	return nil
}

// pull reconciles after a rejected push: the remote record is newer, so
// it replaces the engine state and the local cache. On failure the
// state stays dirty and the next tick retries.
func (c *Coordinator) pull(ctx context.Context) error {
	remote, ok, err := c.remote.Load(ctx, c.userID)
	if err != nil {
		c.logger.Printf("store: reconcile load failed user=%s: %v", c.userID, err)
		return err
	}
	if !ok {
		return nil
	}
	c.eng.Restore(remote)
	c.SaveLocal(remote)
	return nil
}

// Run pushes on a fixed interval until the context is cancelled, then
// flushes once more.
func (c *Coordinator) Run(ctx context.Context) {
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.Flush(context.Background())
			return
		case <-t.C:
			_ = c.SyncNow(ctx)
		}
	}
}

// Flush writes the local cache and pushes regardless of the dirty flag.
// Called on shutdown.
func (c *Coordinator) Flush(ctx context.Context) {
	snap := c.eng.Snapshot()
	c.SaveLocal(snap)
	if c.remote != nil {
		_ = c.push(ctx)
	}
}
