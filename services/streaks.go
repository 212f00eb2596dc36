package services

import (
	"log"
	"time"

	"cyber-learning-system/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// streakLookback caps how far back the streak recomputation scans.
const streakLookback = 60 // days

// StreakService recomputes each user's day-streak from the result records.
// Nothing else in the system writes Streak; handlers and the ledger never
// touch it.
type StreakService struct {
	DB *gorm.DB
}

func NewStreakService(db *gorm.DB) *StreakService {
	return &StreakService{DB: db}
}

// StartScheduler runs the recomputation once a day.
func (s *StreakService) StartScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			if err := s.RecomputeAll(); err != nil {
				log.Printf("[Streaks] recompute failed: %v", err)
			}
		}),
	)
}

// RecomputeAll refreshes the streak of every user.
func (s *StreakService) RecomputeAll() error {
	var ids []string
	if err := s.DB.Model(&models.User{}).Pluck("id", &ids).Error; err != nil {
		return err
	}
	for _, id := range ids {
		streak, err := s.ComputeStreak(id)
		if err != nil {
			log.Printf("[Streaks] skipping %s: %v", id, err)
			continue
		}
		if err := s.DB.Model(&models.User{}).Where("id = ?", id).
			Update("streak", streak).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ [Streaks] recomputed for %d users", len(ids))
	return nil
}

// ComputeStreak counts consecutive active calendar days ending today or
// yesterday. A day is active when any result record of any kind landed on it.
func (s *StreakService) ComputeStreak(userID string) (int, error) {
	since := startOfDay(time.Now().AddDate(0, 0, -streakLookback))

	activeDays := map[string]bool{}
	collect := func(model interface{}) error {
		var stamps []time.Time
		if err := s.DB.Model(model).
			Where("user_id = ? AND completed_at >= ?", userID, since).
			Pluck("completed_at", &stamps).Error; err != nil {
			return err
		}
		for _, t := range stamps {
			activeDays[t.Local().Format("2006-01-02")] = true
		}
		return nil
	}
	for _, model := range []interface{}{
		&models.UserQuizResult{},
		&models.UserActivityResult{},
		&models.CyberLabResult{},
		&models.UserTeamProgress{},
	} {
		if err := collect(model); err != nil {
			return 0, err
		}
	}

	// Walk backwards from today; a streak may also end yesterday without
	// breaking (the user simply hasn't played yet today).
	day := startOfDay(time.Now())
	if !activeDays[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for activeDays[day.Format("2006-01-02")] && streak < streakLookback {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
