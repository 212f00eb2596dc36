package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"cyber-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database per test. A single
// pooled connection keeps the memory database alive for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Activity{},
		&models.TeamChallenge{},
		&models.UserQuizResult{},
		&models.UserActivityResult{},
		&models.UserTeamProgress{},
		&models.CyberLabResult{},
		&models.Achievement{},
		&models.CommunityPost{},
		&models.PostComment{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, totalScore int64) *models.User {
	t.Helper()
	user := &models.User{
		ID:         uuid.NewString(),
		Username:   username,
		FirstName:  "Test",
		LastName:   "User",
		Email:      username + "@example.com",
		TotalScore: totalScore,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user %s: %v", username, err)
	}
	return user
}

func createTestQuiz(t *testing.T, db *gorm.DB, title string, questionPoints ...int) *models.Quiz {
	t.Helper()
	quiz := &models.Quiz{
		ID:         uuid.NewString(),
		Title:      title,
		Slug:       strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Category:   "Cybersecurity",
		Difficulty: "easy",
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("create test quiz: %v", err)
	}
	for i, points := range questionPoints {
		question := &models.Question{
			ID:            uuid.NewString(),
			QuizID:        quiz.ID,
			QuestionText:  fmt.Sprintf("question %d", i+1),
			Options:       []string{"a", "b", "c"},
			CorrectAnswer: 0,
			Points:        points,
			Order:         i + 1,
		}
		if err := db.Create(question).Error; err != nil {
			t.Fatalf("create test question: %v", err)
		}
	}
	return quiz
}

func createTestActivity(t *testing.T, db *gorm.DB, title string, maxScore int64) *models.Activity {
	t.Helper()
	activity := &models.Activity{
		ID:       uuid.NewString(),
		Title:    title,
		Slug:     strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Type:     models.ActivityWordScramble,
		Category: "Cybersecurity",
		MaxScore: maxScore,
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("create test activity: %v", err)
	}
	return activity
}

func createTestChallenge(t *testing.T, db *gorm.DB, team string, maxScore int64) *models.TeamChallenge {
	t.Helper()
	challenge := &models.TeamChallenge{
		ID:       uuid.NewString(),
		Title:    "challenge-" + uuid.NewString()[:8],
		Team:     team,
		Type:     "simulation",
		MaxScore: maxScore,
	}
	if err := db.Create(challenge).Error; err != nil {
		t.Fatalf("create test challenge: %v", err)
	}
	return challenge
}

func reloadUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		t.Fatalf("reload user %s: %v", id, err)
	}
	return &user
}

func daysAgo(n int) time.Time {
	t := time.Now().AddDate(0, 0, -n)
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}
