package services

import (
	"fmt"

	"cyber-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementService struct {
	DB *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{DB: db}
}

// AutoAward checks every trigger threshold against the user's current
// aggregates and awards whatever is newly earned. Safe to call repeatedly:
// each code is granted at most once per user.
func (s *AchievementService) AutoAward(userID string) error {
	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	var completedQuizzes, completedActivities int64
	s.DB.Model(&models.UserQuizResult{}).Where("user_id = ?", userID).Count(&completedQuizzes)
	s.DB.Model(&models.UserActivityResult{}).Where("user_id = ?", userID).Count(&completedActivities)

	counters := map[string]int64{
		"total_score":          user.TotalScore,
		"completed_quizzes":    completedQuizzes,
		"completed_activities": completedActivities,
		"streak":               int64(user.Streak),
	}

	for _, trigger := range models.AchievementTriggers {
		if !meetsThreshold(counters, trigger.Threshold) {
			continue
		}
		var count int64
		s.DB.Model(&models.Achievement{}).
			Where("user_id = ? AND code = ?", userID, trigger.Code).
			Count(&count)
		if count > 0 {
			continue
		}
		achievement := models.Achievement{
			ID:          uuid.NewString(),
			UserID:      userID,
			Code:        trigger.Code,
			Type:        trigger.Type,
			Title:       trigger.Title,
			Description: trigger.Description,
			IconName:    trigger.IconName,
		}
		if err := s.DB.Create(&achievement).Error; err != nil {
			return err
		}
		fmt.Printf("🎖️ Achievement awarded: %s → %s\n", trigger.Title, userID)
	}
	return nil
}

// ListForUser returns a user's achievements, newest first.
func (s *AchievementService) ListForUser(userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.DB.Where("user_id = ?", userID).Order("earned_at DESC").Find(&achievements).Error
	return achievements, err
}

func meetsThreshold(counters, required map[string]int64) bool {
	for key, min := range required {
		if counters[key] < min {
			return false
		}
	}
	return true
}
