// Package engine implements the mutating operations over the
// progression state. Every operation is a total function: validation
// failures return a zero/false result and leave the state untouched,
// never an error. Operations are atomic with respect to the state; the
// mutex also guards against re-entrant double submission of the same
// action.
package engine

import (
	"math"
	"sync"
	"time"

	"github.com/ISSA-Motomu/Study-Guardian/internal/catalog"
	"github.com/ISSA-Motomu/Study-Guardian/internal/config"
	"github.com/ISSA-Motomu/Study-Guardian/internal/events"
	"github.com/ISSA-Motomu/Study-Guardian/internal/progress"
	"github.com/ISSA-Motomu/Study-Guardian/internal/valuation"
)

// Saver receives a snapshot after every mutating action. Implementations
// must be best-effort and non-blocking; a failed save never affects the
// already-applied mutation.
type Saver interface {
	SaveLocal(progress.Snapshot)
}

type Options struct {
	Catalog *catalog.Catalog
	Balance config.Balance
	Bus     *events.Bus
	Clock   Clock
	Saver   Saver
}

// Engine owns the progression state exclusively. Events are published
// after the state mutation completes and the lock is released, so
// listeners may call back into the engine.
type Engine struct {
	mu    sync.Mutex
	val   valuation.Valuer
	bus   *events.Bus
	clock Clock
	saver Saver
	st    progress.State
}

func New(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus()
	}
	return &Engine{
		val:   valuation.New(opts.Catalog, opts.Balance),
		bus:   opts.Bus,
		clock: opts.Clock,
		saver: opts.Saver,
		st:    progress.New(opts.Clock.Now()),
	}
}

// SetSaver installs the persistence hook after construction; the
// coordinator and engine reference each other, so one side has to be
// wired late.
func (e *Engine) SetSaver(s Saver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saver = s
}

// Valuer exposes the read-side computations bound to this engine's
// catalog and balance.
func (e *Engine) Valuer() valuation.Valuer { return e.val }

// State returns a deep copy of the current progression state.
func (e *Engine) State() progress.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Clone()
}

// Snapshot captures the persistable state.
func (e *Engine) Snapshot() progress.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Snapshot()
}

// Restore replaces the state from a persisted snapshot. The prestige
// multiplier is recomputed from the banked points so a stale or missing
// stored value cannot drift from the formula. The restored state is
// considered clean.
func (e *Engine) Restore(snap progress.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st = progress.FromSnapshot(snap)
	e.st.PrestigeMultiplier = e.val.PrestigeMultiplier(e.st.PrestigePoints)
	e.st.Dirty = false
}

// Dirty reports whether the state has mutated since the last sync.
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Dirty
}

// MarkSynced records a successful remote sync of the given snapshot
// version. The dirty flag clears only when no mutation bumped the
// version while the push was in flight; otherwise the newer state stays
// dirty and syncs on the next tick.
func (e *Engine) MarkSynced(version int64, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st.LastSyncAt = at
	if e.st.Version == version {
		e.st.Dirty = false
	}
}

// BuyFacility purchases up to quantity levels, recomputing the cost at
// each step, and returns how many were actually bought. Purchasing
// stops at the first level that is unaffordable or still locked.
func (e *Engine) BuyFacility(facilityID string, quantity int) int {
	e.mu.Lock()
	f, ok := e.val.Catalog.FacilityByID(facilityID)
	if !ok {
		e.mu.Unlock()
		return 0
	}

	var pending []events.Event
	purchased := 0
	for i := 0; i < quantity; i++ {
		level := e.st.LevelOf(facilityID)
		cost := e.val.Cost(f.BaseCost, level)
		if e.st.KnowledgePoints < cost || e.st.TotalEarned < f.UnlockAt {
			break
		}
		e.st.KnowledgePoints -= cost
		e.st.FacilityLevels[facilityID] = level + 1
		purchased++

		if e.isMilestone(level + 1) {
			pending = append(pending, events.Event{
				Kind: events.KindMilestone,
				At:   e.clock.Now(),
				Data: events.MilestoneData{
					FacilityID: facilityID,
					Level:      level + 1,
					Bonus:      e.val.MilestoneBonus(level + 1),
				},
			})
		}
	}

	if purchased > 0 {
		e.st.Dirty = true
		pending = append(pending, events.Event{
			Kind: events.KindPurchase,
			At:   e.clock.Now(),
			Data: events.PurchaseData{
				FacilityID: facilityID,
				Amount:     purchased,
				NewLevel:   e.st.LevelOf(facilityID),
			},
		})
		pending = append(pending, e.checkAchievementsLocked()...)
		e.persistLocked()
	}
	e.mu.Unlock()

	e.publish(pending)
	return purchased
}

// BuyUpgrade purchases a one-time upgrade. Returns false without any
// state change when the upgrade is unknown, already purchased, or
// unaffordable.
func (e *Engine) BuyUpgrade(upgradeID string) bool {
	e.mu.Lock()
	u, ok := e.val.Catalog.UpgradeByID(upgradeID)
	if !ok || e.st.HasUpgrade(upgradeID) || e.st.KnowledgePoints < u.Cost {
		e.mu.Unlock()
		return false
	}

	e.st.KnowledgePoints -= u.Cost
	e.st.PurchasedUpgrades = append(e.st.PurchasedUpgrades, upgradeID)
	e.st.Dirty = true
	pending := []events.Event{{
		Kind: events.KindPurchase,
		At:   e.clock.Now(),
		Data: events.PurchaseData{UpgradeID: upgradeID, Amount: 1},
	}}
	e.persistLocked()
	e.mu.Unlock()

	e.publish(pending)
	return true
}

// EarnFromStudy converts study minutes into KP through the total
// multiplier and returns the amount earned (0 for non-positive input).
func (e *Engine) EarnFromStudy(minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	e.mu.Lock()
	earned := math.Floor(minutes * e.val.TotalMultiplier(&e.st))
	pending := e.addPointsLocked(earned)
	e.mu.Unlock()

	e.publish(pending)
	return earned
}

// AddPoints credits KP directly to both the spendable balance and the
// lifetime counter. Non-positive amounts are ignored.
func (e *Engine) AddPoints(amount float64) {
	e.mu.Lock()
	pending := e.addPointsLocked(amount)
	e.mu.Unlock()
	e.publish(pending)
}

func (e *Engine) addPointsLocked(amount float64) []events.Event {
	if amount <= 0 {
		return nil
	}
	e.st.KnowledgePoints += amount
	e.st.TotalEarned += amount
	e.st.Dirty = true
	pending := e.checkAchievementsLocked()
	e.persistLocked()
	return pending
}

// Tick applies passive production for the elapsed interval. The caller
// (presentation layer) schedules the recurring timer.
func (e *Engine) Tick(deltaSeconds float64) {
	if deltaSeconds <= 0 {
		return
	}
	e.mu.Lock()
	rate := e.val.ProductionRate(&e.st)
	if rate <= 0 {
		e.mu.Unlock()
		return
	}
	earned := rate * deltaSeconds
	e.st.KnowledgePoints += earned
	e.st.TotalEarned += earned
	e.st.Dirty = true
	pending := e.checkAchievementsLocked()
	e.persistLocked()
	e.mu.Unlock()

	e.publish(pending)
}

// Prestige resets the current cycle in exchange for permanent prestige
// points. Returns false without mutation when no points are available.
func (e *Engine) Prestige() bool {
	e.mu.Lock()
	points := e.val.PotentialPrestigePoints(&e.st)
	if points <= 0 {
		e.mu.Unlock()
		return false
	}

	e.st.PrestigePoints += points
	e.st.PrestigeLevel++
	e.st.PrestigeMultiplier = e.val.PrestigeMultiplier(e.st.PrestigePoints)
	e.st.LifetimeEarned += e.st.TotalEarned

	e.st.KnowledgePoints = 0
	e.st.TotalEarned = 0
	e.st.FacilityLevels = map[string]int{}
	e.st.PurchasedUpgrades = []string{}

	e.st.Dirty = true
	pending := []events.Event{{
		Kind: events.KindPrestige,
		At:   e.clock.Now(),
		Data: events.PrestigeData{Points: points, NewLevel: e.st.PrestigeLevel},
	}}
	pending = append(pending, e.checkAchievementsLocked()...)
	e.persistLocked()
	e.mu.Unlock()

	e.publish(pending)
	return true
}

// CalculateOfflineReward converts time elapsed since the last activity
// into a pending credit at half the live production rate, capped at the
// configured window. The credit is not granted until claimed.
func (e *Engine) CalculateOfflineReward() float64 {
	e.mu.Lock()
	now := e.clock.Now()
	elapsed := now.Sub(e.st.LastActiveAt)
	if elapsed > e.val.Balance.OfflineCap {
		elapsed = e.val.Balance.OfflineCap
	}
	reward := 0.0
	if elapsed > 0 {
		reward = e.val.ProductionRate(&e.st) * elapsed.Seconds() * e.val.Balance.OfflineRate
	}
	e.st.PendingOfflineReward = reward
	e.st.LastActiveAt = now
	e.st.Dirty = true
	e.persistLocked()
	e.mu.Unlock()
	return reward
}

// ClaimOfflineReward grants the pending credit and returns the claimed
// amount (0 when nothing is pending).
func (e *Engine) ClaimOfflineReward() float64 {
	e.mu.Lock()
	reward := e.st.PendingOfflineReward
	if reward <= 0 {
		e.mu.Unlock()
		return 0
	}
	e.st.PendingOfflineReward = 0
	pending := e.addPointsLocked(reward)
	pending = append(pending, events.Event{
		Kind: events.KindOfflineClaimed,
		At:   e.clock.Now(),
		Data: events.OfflineClaimedData{Reward: reward},
	})
	e.mu.Unlock()

	e.publish(pending)
	return reward
}

func (e *Engine) isMilestone(level int) bool {
	for _, m := range e.val.Balance.Milestones {
		if level == m {
			return true
		}
	}
	return false
}

// persistLocked bumps the snapshot version and hands a copy to the
// saver. Must be called with the mutex held, after the mutation.
func (e *Engine) persistLocked() {
	e.st.Version++
	if e.saver != nil {
		e.saver.SaveLocal(e.st.Snapshot())
	}
}

func (e *Engine) publish(pending []events.Event) {
	for _, ev := range pending {
		e.bus.Publish(ev)
	}
}
