package services

import (
	"math"
	"time"

	"cyber-learning-system/models"

	"gorm.io/gorm"
)

// StatsService composes the score ledger and the result records into the
// dashboard summary. Everything is recomputed on each call, no caching.
type StatsService struct {
	DB      *gorm.DB
	Users   *UserService
	Ranking *RankingService
}

func NewStatsService(db *gorm.DB, users *UserService, ranking *RankingService) *StatsService {
	return &StatsService{DB: db, Users: users, Ranking: ranking}
}

// UserStats is the dashboard payload.
type UserStats struct {
	TotalScore          int64    `json:"total_score"`
	Rank                int      `json:"rank"`
	Streak              int      `json:"streak"`
	AvgScore            int64    `json:"avg_score"`
	CompletedQuizzes    int64    `json:"completed_quizzes"`
	CompletedActivities int64    `json:"completed_activities"`
	TimeSpentHours      float64  `json:"time_spent_hours"`
	WeeklyScores        [7]int64 `json:"weekly_scores"` // index 0 = six days ago, index 6 = today
}

// GetUserStats builds the per-user summary.
func (s *StatsService) GetUserStats(userID string) (*UserStats, error) {
	user, err := s.Users.GetOrCreateUser(userID)
	if err != nil {
		return nil, err
	}
	rank, err := s.Ranking.UserRank(userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		TotalScore: user.TotalScore,
		Rank:       rank,
		Streak:     user.Streak,
	}

	var quizResults []models.UserQuizResult
	if err := s.DB.Where("user_id = ?", userID).Find(&quizResults).Error; err != nil {
		return nil, err
	}
	var activityResults []models.UserActivityResult
	if err := s.DB.Where("user_id = ?", userID).Find(&activityResults).Error; err != nil {
		return nil, err
	}
	var labResults []models.CyberLabResult
	if err := s.DB.Where("user_id = ?", userID).Find(&labResults).Error; err != nil {
		return nil, err
	}
	var teamProgress []models.UserTeamProgress
	if err := s.DB.Where("user_id = ?", userID).Find(&teamProgress).Error; err != nil {
		return nil, err
	}

	stats.CompletedQuizzes = int64(len(quizResults))
	stats.CompletedActivities = int64(len(activityResults))

	// Average over quiz + mini-game scores only; guard the empty case.
	var scoreSum int64
	for _, r := range quizResults {
		scoreSum += r.Score
	}
	for _, r := range activityResults {
		scoreSum += r.Score
	}
	if n := stats.CompletedQuizzes + stats.CompletedActivities; n > 0 {
		stats.AvgScore = int64(math.Round(float64(scoreSum) / float64(n)))
	}

	// Time spent counts every result kind, reported in hours to one decimal.
	var seconds int64
	for _, r := range quizResults {
		seconds += int64(r.TimeSpent)
	}
	for _, r := range activityResults {
		seconds += int64(r.TimeSpent)
	}
	for _, r := range labResults {
		seconds += int64(r.TimeSpent)
	}
	for _, r := range teamProgress {
		seconds += int64(r.TimeSpent)
	}
	stats.TimeSpentHours = math.Round(float64(seconds)/3600*10) / 10

	// Weekly histogram over all result kinds, local calendar days.
	now := time.Now()
	windowStart := startOfDay(now.AddDate(0, 0, -6))
	bucket := func(completedAt time.Time, score int64) {
		if completedAt.Before(windowStart) || completedAt.After(now) {
			return
		}
		idx := daysBetween(windowStart, startOfDay(completedAt))
		if idx >= 0 && idx < 7 {
			stats.WeeklyScores[idx] += score
		}
	}
	for _, r := range quizResults {
		bucket(r.CompletedAt, r.Score)
	}
	for _, r := range activityResults {
		bucket(r.CompletedAt, r.Score)
	}
	for _, r := range labResults {
		bucket(r.CompletedAt, r.Score)
	}
	for _, r := range teamProgress {
		bucket(r.CompletedAt, r.Score)
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both at midnight local time.
// Calendar arithmetic, not elapsed/24h, so DST transitions don't skew buckets.
func daysBetween(a, b time.Time) int {
	days := 0
	for cur := a; cur.Before(b); cur = cur.AddDate(0, 0, 1) {
		days++
		if days > 7 {
			break
		}
	}
	return days
}
