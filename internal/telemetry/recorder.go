package telemetry

import (
	"log"

	"github.com/ISSA-Motomu/Study-Guardian/internal/events"
)

// Recorder translates bus events into telemetry records.
type Recorder struct {
	repo   Repository
	logger *log.Logger
}

func NewRecorder(repo Repository, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{repo: repo, logger: logger}
}

// Attach subscribes the recorder to every progression event kind.
func (r *Recorder) Attach(bus *events.Bus) {
	bus.Subscribe(events.KindPurchase, r.onPurchase)
	bus.Subscribe(events.KindMilestone, r.onMilestone)
	bus.Subscribe(events.KindPrestige, r.onPrestige)
	bus.Subscribe(events.KindAchievement, r.onAchievement)
	bus.Subscribe(events.KindOfflineClaimed, r.onOfflineClaimed)
}

func (r *Recorder) record(t EventType, ev events.Event, meta EventMetadata) {
	if err := r.repo.RecordEvent(t, ev.At, meta); err != nil {
		r.logger.Printf("telemetry: record %s failed: %v", t, err)
	}
}

func (r *Recorder) onPurchase(ev events.Event) {
	data, ok := ev.Data.(events.PurchaseData)
	if !ok {
		return
	}
	if data.UpgradeID != "" {
		r.record(EventUpgradePurchased, ev, EventMetadata{"upgrade_id": data.UpgradeID})
		return
	}
	r.record(EventFacilityPurchased, ev, EventMetadata{
		"facility_id": data.FacilityID,
		"amount":      data.Amount,
		"new_level":   data.NewLevel,
	})
}

func (r *Recorder) onMilestone(ev events.Event) {
	data, ok := ev.Data.(events.MilestoneData)
	if !ok {
		return
	}
	r.record(EventMilestoneReached, ev, EventMetadata{
		"facility_id": data.FacilityID,
		"level":       data.Level,
		"bonus":       data.Bonus,
	})
}

func (r *Recorder) onPrestige(ev events.Event) {
	data, ok := ev.Data.(events.PrestigeData)
	if !ok {
		return
	}
	r.record(EventPrestiged, ev, EventMetadata{
		"points":    data.Points,
		"new_level": data.NewLevel,
	})
}

func (r *Recorder) onAchievement(ev events.Event) {
	data, ok := ev.Data.(events.AchievementData)
	if !ok {
		return
	}
	r.record(EventAchievement, ev, EventMetadata{
		"achievement_id": data.AchievementID,
		"name":           data.Name,
	})
}

func (r *Recorder) onOfflineClaimed(ev events.Event) {
	data, ok := ev.Data.(events.OfflineClaimedData)
	if !ok {
		return
	}
	r.record(EventOfflineClaimed, ev, EventMetadata{"reward": data.Reward})
}
