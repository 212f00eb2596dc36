package services

import (
	"fmt"
	"strings"
	"time"

	"cyber-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoringService owns the result records and the score ledger. Every Save*
// method appends one immutable result record and applies the matching ledger
// increment inside a single transaction: either both land or neither does.
type ScoringService struct {
	DB *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{DB: db}
}

// addScore applies the atomic ledger increment and stamps last activity.
// The increment runs as SQL arithmetic so concurrent completions never lose
// updates. Returns NotFoundError when the user row does not exist.
func (s *ScoringService) addScore(tx *gorm.DB, userID string, amount int64) error {
	res := tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"total_score":   gorm.Expr("total_score + ?", amount),
		"last_activity": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("user")
	}
	return nil
}

// SaveQuizResult validates, then records the attempt and credits its score.
func (s *ScoringService) SaveQuizResult(result *models.UserQuizResult) (*models.UserQuizResult, error) {
	if result.UserID == "" {
		return nil, validationErr("userId", "required")
	}
	if result.QuizID == "" {
		return nil, validationErr("quizId", "required")
	}
	if err := checkNonNegative(map[string]int64{
		"score":          result.Score,
		"totalQuestions": int64(result.TotalQuestions),
		"correctAnswers": int64(result.CorrectAnswers),
		"timeSpent":      int64(result.TimeSpent),
	}); err != nil {
		return nil, err
	}
	if result.CorrectAnswers > result.TotalQuestions {
		return nil, validationErr("correctAnswers", "cannot exceed totalQuestions")
	}

	var quiz models.Quiz
	if err := s.DB.Where("id = ?", result.QuizID).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundErr("quiz")
		}
		return nil, err
	}
	var maxScore int64
	if err := s.DB.Model(&models.Question{}).
		Where("quiz_id = ?", result.QuizID).
		Select("COALESCE(SUM(points), 0)").Scan(&maxScore).Error; err != nil {
		return nil, err
	}
	if maxScore > 0 && result.Score > maxScore {
		return nil, validationErr("score", fmt.Sprintf("exceeds quiz max of %d", maxScore))
	}

	result.ID = uuid.NewString()
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return s.addScore(tx, result.UserID, result.Score)
	})
	if err != nil {
		return nil, err
	}
	s.sweepAchievements(result.UserID)
	return result, nil
}

// SaveActivityResult records a finished mini-game session.
func (s *ScoringService) SaveActivityResult(result *models.UserActivityResult) (*models.UserActivityResult, error) {
	if result.UserID == "" {
		return nil, validationErr("userId", "required")
	}
	if result.ActivityID == "" {
		return nil, validationErr("activityId", "required")
	}
	if err := checkNonNegative(map[string]int64{
		"score":     result.Score,
		"timeSpent": int64(result.TimeSpent),
	}); err != nil {
		return nil, err
	}

	var activity models.Activity
	if err := s.DB.Where("id = ?", result.ActivityID).First(&activity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundErr("activity")
		}
		return nil, err
	}
	if activity.MaxScore > 0 && result.Score > activity.MaxScore {
		return nil, validationErr("score", fmt.Sprintf("exceeds activity max of %d", activity.MaxScore))
	}

	result.ID = uuid.NewString()
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return s.addScore(tx, result.UserID, result.Score)
	})
	if err != nil {
		return nil, err
	}
	s.sweepAchievements(result.UserID)
	return result, nil
}

// SaveTeamProgress records a completed team-challenge attempt.
func (s *ScoringService) SaveTeamProgress(progress *models.UserTeamProgress) (*models.UserTeamProgress, error) {
	if progress.UserID == "" {
		return nil, validationErr("userId", "required")
	}
	if progress.ChallengeID == "" {
		return nil, validationErr("challengeId", "required")
	}
	if err := checkNonNegative(map[string]int64{
		"score":     progress.Score,
		"timeSpent": int64(progress.TimeSpent),
	}); err != nil {
		return nil, err
	}
	if progress.Attempts < 1 {
		progress.Attempts = 1
	}

	var challenge models.TeamChallenge
	if err := s.DB.Where("id = ?", progress.ChallengeID).First(&challenge).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundErr("team challenge")
		}
		return nil, err
	}
	if challenge.MaxScore > 0 && progress.Score > challenge.MaxScore {
		return nil, validationErr("score", fmt.Sprintf("exceeds challenge max of %d", challenge.MaxScore))
	}

	progress.ID = uuid.NewString()
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now()
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(progress).Error; err != nil {
			return err
		}
		return s.addScore(tx, progress.UserID, progress.Score)
	})
	if err != nil {
		return nil, err
	}
	s.sweepAchievements(progress.UserID)
	return progress, nil
}

// SaveCyberLabResult records a completed lab simulation.
func (s *ScoringService) SaveCyberLabResult(result *models.CyberLabResult) (*models.CyberLabResult, error) {
	if result.UserID == "" {
		return nil, validationErr("userId", "required")
	}
	if strings.TrimSpace(result.LabType) == "" {
		return nil, validationErr("labType", "required")
	}
	if err := checkNonNegative(map[string]int64{
		"score":          result.Score,
		"totalQuestions": int64(result.TotalQuestions),
		"correctAnswers": int64(result.CorrectAnswers),
		"timeSpent":      int64(result.TimeSpent),
	}); err != nil {
		return nil, err
	}
	if result.CorrectAnswers > result.TotalQuestions {
		return nil, validationErr("correctAnswers", "cannot exceed totalQuestions")
	}

	result.ID = uuid.NewString()
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return s.addScore(tx, result.UserID, result.Score)
	})
	if err != nil {
		return nil, err
	}
	s.sweepAchievements(result.UserID)
	return result, nil
}

// UserQuizResults lists a user's quiz attempts, newest first.
func (s *ScoringService) UserQuizResults(userID string) ([]models.UserQuizResult, error) {
	var results []models.UserQuizResult
	err := s.DB.Where("user_id = ?", userID).Order("completed_at DESC").Find(&results).Error
	return results, err
}

// UserActivityResults lists a user's mini-game sessions, newest first.
func (s *ScoringService) UserActivityResults(userID string) ([]models.UserActivityResult, error) {
	var results []models.UserActivityResult
	err := s.DB.Where("user_id = ?", userID).Order("completed_at DESC").Find(&results).Error
	return results, err
}

// UserCyberLabResults lists a user's lab runs, newest first.
func (s *ScoringService) UserCyberLabResults(userID string) ([]models.CyberLabResult, error) {
	var results []models.CyberLabResult
	err := s.DB.Where("user_id = ?", userID).Order("completed_at DESC").Find(&results).Error
	return results, err
}

// UserTeamProgressFor lists a user's progress on one team's challenges.
func (s *ScoringService) UserTeamProgressFor(userID, team string) ([]models.UserTeamProgress, error) {
	var progress []models.UserTeamProgress
	err := s.DB.
		Joins("JOIN team_challenges ON team_challenges.id = user_team_progresses.challenge_id").
		Where("user_team_progresses.user_id = ? AND team_challenges.team = ?", userID, team).
		Order("user_team_progresses.completed_at DESC").
		Find(&progress).Error
	return progress, err
}

// sweepAchievements re-checks award thresholds after a score event.
// Fire-and-forget: a miss here is picked up by the sweep worker later.
func (s *ScoringService) sweepAchievements(userID string) {
	achievementSvc := NewAchievementService(s.DB)
	_ = achievementSvc.AutoAward(userID)
}

func checkNonNegative(fields map[string]int64) error {
	for field, v := range fields {
		if v < 0 {
			return validationErr(field, "must be a non-negative integer")
		}
	}
	return nil
}
