// Study Guardian's progression daemon: restores the player's evolution
// state, applies passive production, and keeps local and remote
// snapshots in sync. Study sessions are credited through the sync API's
// snapshot flow; this process owns everything that happens between
// them.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ISSA-Motomu/Study-Guardian/internal/catalog"
	"github.com/ISSA-Motomu/Study-Guardian/internal/config"
	"github.com/ISSA-Motomu/Study-Guardian/internal/engine"
	"github.com/ISSA-Motomu/Study-Guardian/internal/events"
	"github.com/ISSA-Motomu/Study-Guardian/internal/identity"
	"github.com/ISSA-Motomu/Study-Guardian/internal/store"
	"github.com/ISSA-Motomu/Study-Guardian/internal/telemetry"
)

func main() {
	_ = godotenv.Load()
	logger := log.Default()

	app := config.AppFromEnv()
	balance := config.FromEnv()

	cat := catalog.Default()
	if app.CatalogPath != "" {
		loaded, err := catalog.Load(app.CatalogPath)
		if err != nil {
			logger.Fatalf("load catalog %s: %v", app.CatalogPath, err)
		}
		cat = loaded
	}
	if err := cat.Validate(); err != nil {
		logger.Fatalf("catalog integrity: %v", err)
	}

	user := identity.Resolve(app.DataDir)
	logger.Printf("progression for user=%s", user.UserID())

	bus := events.NewBus()
	eng := engine.New(engine.Options{
		Catalog: cat,
		Balance: balance,
		Bus:     bus,
	})

	cache, err := store.NewLocalCache(app.DataDir)
	if err != nil {
		logger.Fatalf("open local cache: %v", err)
	}
	var remote *store.Client
	if app.RemoteURL != "" {
		remote = store.NewClient(app.RemoteURL)
	}
	coord := store.NewCoordinator(store.CoordinatorOptions{
		Engine:   eng,
		Cache:    cache,
		Remote:   remote,
		UserID:   user.UserID(),
		Interval: app.SyncInterval,
		Logger:   logger,
	})
	eng.SetSaver(coord)

	telRepo := telemetry.NewMemoryRepository()
	telemetry.NewRecorder(telRepo, logger).Attach(bus)
	bus.Subscribe(events.KindAchievement, func(ev events.Event) {
		if data, ok := ev.Data.(events.AchievementData); ok {
			logger.Printf("achievement unlocked: %s (%s)", data.Name, data.AchievementID)
		}
	})
	bus.Subscribe(events.KindMilestone, func(ev events.Event) {
		if data, ok := ev.Data.(events.MilestoneData); ok {
			logger.Printf("milestone: %s reached level %d (x%.0f production)", data.FacilityID, data.Level, data.Bonus)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	coord.Initialize(ctx)
	if reward := eng.CalculateOfflineReward(); reward > 0 {
		claimed := eng.ClaimOfflineReward()
		logger.Printf("offline reward claimed: %.1f KP", claimed)
	}

	go coord.Run(ctx)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			coord.Flush(context.Background())
			printSessionStats(logger, telRepo, started)
			return
		case now := <-ticker.C:
			eng.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

func printSessionStats(logger *log.Logger, repo telemetry.Repository, since time.Time) {
	recorded, err := repo.GetEvents(since, nil)
	if err != nil {
		return
	}
	stats, err := telemetry.CalculateSessionStats(recorded, since)
	if err != nil {
		return
	}
	logger.Printf("session: %d facility purchases (%d levels), %d upgrades, %d milestones, %d achievements",
		stats.FacilityPurchases, stats.LevelsBought, stats.UpgradePurchases, stats.Milestones, stats.Achievements)
}
