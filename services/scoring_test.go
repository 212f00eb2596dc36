package services_test

import (
	"testing"

	"cyber-learning-system/models"
	"cyber-learning-system/services"

	"github.com/google/uuid"
)

func TestQuizResultCreditsLedger(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "alice", 0)
	quiz := createTestQuiz(t, db, "Fundamentals", 10, 10, 10)

	result, err := scoring.SaveQuizResult(&models.UserQuizResult{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		Score:          25,
		TotalQuestions: 3,
		CorrectAnswers: 2,
		TimeSpent:      90,
	})
	if err != nil {
		t.Fatalf("save quiz result: %v", err)
	}
	if result.ID == "" || result.CompletedAt.IsZero() {
		t.Fatalf("expected populated record, got %+v", result)
	}

	reloaded := reloadUser(t, db, user.ID)
	if reloaded.TotalScore != 25 {
		t.Fatalf("expected total score 25, got %d", reloaded.TotalScore)
	}
	if reloaded.LastActivity == nil {
		t.Fatal("expected last activity to be stamped")
	}
}

func TestLedgerAdditivity(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "bob", 40)
	quiz := createTestQuiz(t, db, "Fundamentals", 20, 20, 20)

	for _, score := range []int64{10, 20, 30} {
		if _, err := scoring.SaveQuizResult(&models.UserQuizResult{
			UserID:         user.ID,
			QuizID:         quiz.ID,
			Score:          score,
			TotalQuestions: 3,
			CorrectAnswers: 1,
		}); err != nil {
			t.Fatalf("save quiz result (%d): %v", score, err)
		}
	}

	if got := reloadUser(t, db, user.ID).TotalScore; got != 100 {
		t.Fatalf("expected total score 40+60=100, got %d", got)
	}
}

func TestQuizScoreAboveMaxRejected(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "carol", 0)
	quiz := createTestQuiz(t, db, "Fundamentals", 10, 10)

	_, err := scoring.SaveQuizResult(&models.UserQuizResult{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		Score:          50, // quiz max is 20
		TotalQuestions: 2,
		CorrectAnswers: 2,
	})
	if !services.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	var count int64
	db.Model(&models.UserQuizResult{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no record after rejection, got %d", count)
	}
	if got := reloadUser(t, db, user.ID).TotalScore; got != 0 {
		t.Fatalf("expected untouched ledger, got %d", got)
	}
}

func TestNegativeInputsRejected(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "dave", 0)
	quiz := createTestQuiz(t, db, "Fundamentals", 10)

	cases := []models.UserQuizResult{
		{UserID: user.ID, QuizID: quiz.ID, Score: -1, TotalQuestions: 1},
		{UserID: user.ID, QuizID: quiz.ID, Score: 5, TotalQuestions: -1},
		{UserID: user.ID, QuizID: quiz.ID, Score: 5, TotalQuestions: 1, TimeSpent: -30},
	}
	for i, tc := range cases {
		if _, err := scoring.SaveQuizResult(&tc); !services.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestMissingUserLeavesNoOrphanRecord(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	quiz := createTestQuiz(t, db, "Fundamentals", 10)

	_, err := scoring.SaveQuizResult(&models.UserQuizResult{
		UserID:         uuid.NewString(), // never created
		QuizID:         quiz.ID,
		Score:          10,
		TotalQuestions: 1,
		CorrectAnswers: 1,
	})
	if !services.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	// The transaction must roll the record insert back with the failed increment.
	var count int64
	db.Model(&models.UserQuizResult{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no orphaned result record, got %d", count)
	}
}

func TestActivityResultRespectsMaxScore(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "erin", 0)
	activity := createTestActivity(t, db, "Term Scramble", 100)

	if _, err := scoring.SaveActivityResult(&models.UserActivityResult{
		UserID:     user.ID,
		ActivityID: activity.ID,
		Score:      150,
	}); !services.IsValidation(err) {
		t.Fatalf("expected validation error above max, got %v", err)
	}

	result, err := scoring.SaveActivityResult(&models.UserActivityResult{
		UserID:     user.ID,
		ActivityID: activity.ID,
		Score:      80,
		TimeSpent:  120,
	})
	if err != nil {
		t.Fatalf("save activity result: %v", err)
	}
	if result.CompletedAt.IsZero() {
		t.Fatal("expected completion timestamp")
	}
	if got := reloadUser(t, db, user.ID).TotalScore; got != 80 {
		t.Fatalf("expected total score 80, got %d", got)
	}
}

func TestTeamProgressCreditsLedger(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "frank", 0)
	challenge := createTestChallenge(t, db, models.TeamRed, 150)

	progress, err := scoring.SaveTeamProgress(&models.UserTeamProgress{
		UserID:      user.ID,
		ChallengeID: challenge.ID,
		Score:       120,
		Completed:   true,
	})
	if err != nil {
		t.Fatalf("save team progress: %v", err)
	}
	if progress.Attempts != 1 {
		t.Fatalf("expected attempts defaulted to 1, got %d", progress.Attempts)
	}
	if got := reloadUser(t, db, user.ID).TotalScore; got != 120 {
		t.Fatalf("expected total score 120, got %d", got)
	}
}

func TestCyberLabResultValidation(t *testing.T) {
	db := newTestDB(t)
	scoring := services.NewScoringService(db)
	user := createTestUser(t, db, "grace", 0)

	if _, err := scoring.SaveCyberLabResult(&models.CyberLabResult{
		UserID:         user.ID,
		LabType:        "   ",
		Score:          40,
		TotalQuestions: 5,
	}); !services.IsValidation(err) {
		t.Fatalf("expected validation error for blank lab type, got %v", err)
	}

	if _, err := scoring.SaveCyberLabResult(&models.CyberLabResult{
		UserID:         user.ID,
		LabType:        "phishing",
		Score:          40,
		TotalQuestions: 5,
		CorrectAnswers: 4,
	}); err != nil {
		t.Fatalf("save lab result: %v", err)
	}
	if got := reloadUser(t, db, user.ID).TotalScore; got != 40 {
		t.Fatalf("expected total score 40, got %d", got)
	}
}
