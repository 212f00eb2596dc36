package workers

import (
	"context"
	"log"
	"time"

	"cyber-learning-system/models"
	"cyber-learning-system/services"

	"gorm.io/gorm"
)

// AchievementSweepWorker periodically re-runs achievement threshold checks
// for recently active users. The scoring service fires an inline sweep after
// every score event, but that call is fire-and-forget; this loop guarantees
// missed awards are eventually granted.
type AchievementSweepWorker struct {
	db           *gorm.DB
	achievements *services.AchievementService
	interval     time.Duration
	activeWindow time.Duration
}

func NewAchievementSweepWorker(db *gorm.DB) *AchievementSweepWorker {
	return &AchievementSweepWorker{
		db:           db,
		achievements: services.NewAchievementService(db),
		interval:     15 * time.Minute,
		activeWindow: 24 * time.Hour,
	}
}

func (w *AchievementSweepWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting Achievement Sweep Worker…")
	go w.run(ctx)
}

func (w *AchievementSweepWorker) run(ctx context.Context) {
	// One pass at startup to pick up anything missed while down.
	w.sweep()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Achievement Sweep Worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *AchievementSweepWorker) sweep() {
	cutoff := time.Now().Add(-w.activeWindow)

	var ids []string
	if err := w.db.Model(&models.User{}).
		Where("last_activity >= ?", cutoff).
		Pluck("id", &ids).Error; err != nil {
		log.Printf("⚠️ [Achievements] sweep query failed: %v", err)
		return
	}

	awardedFor := 0
	for _, id := range ids {
		if err := w.achievements.AutoAward(id); err != nil {
			log.Printf("⚠️ [Achievements] sweep failed for %s: %v", id, err)
			continue
		}
		awardedFor++
	}
	if len(ids) > 0 {
		log.Printf("✅ [Achievements] sweep covered %d active users", awardedFor)
	}
}
