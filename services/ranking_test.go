package services_test

import (
	"testing"

	"cyber-learning-system/models"
	"cyber-learning-system/services"

	"github.com/google/uuid"
)

func TestLeaderboardOrderAndLength(t *testing.T) {
	db := newTestDB(t)
	ranking := services.NewRankingService(db, services.NewUserService(db))

	createTestUser(t, db, "low", 10)
	createTestUser(t, db, "high", 300)
	createTestUser(t, db, "mid", 150)
	createTestUser(t, db, "zero", 0)

	entries, err := ranking.Leaderboard(3)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TotalScore > entries[i-1].TotalScore {
			t.Fatalf("entries out of order: %d before %d",
				entries[i-1].TotalScore, entries[i].TotalScore)
		}
	}
	if entries[0].Username != "high" || entries[0].Rank != 1 {
		t.Fatalf("expected high at rank 1, got %+v", entries[0])
	}
}

func TestLeaderboardTiedScoresShareRank(t *testing.T) {
	db := newTestDB(t)
	ranking := services.NewRankingService(db, services.NewUserService(db))

	createTestUser(t, db, "first", 200)
	createTestUser(t, db, "also-first", 200)
	createTestUser(t, db, "third", 100)

	entries, err := ranking.Leaderboard(10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Rank != 1 || entries[1].Rank != 1 {
		t.Fatalf("expected tied users at rank 1, got %d and %d",
			entries[0].Rank, entries[1].Rank)
	}
	if entries[2].Rank != 3 {
		t.Fatalf("expected next distinct score at rank 3, got %d", entries[2].Rank)
	}
}

func TestLeaderboardNonPositiveLimit(t *testing.T) {
	db := newTestDB(t)
	ranking := services.NewRankingService(db, services.NewUserService(db))
	createTestUser(t, db, "solo", 50)

	for _, limit := range []int{0, -5} {
		entries, err := ranking.Leaderboard(limit)
		if err != nil {
			t.Fatalf("leaderboard(%d): %v", limit, err)
		}
		if entries == nil || len(entries) != 0 {
			t.Fatalf("expected empty non-nil slice for limit %d, got %v", limit, entries)
		}
	}
}

func TestUserRankCountsStrictlyGreater(t *testing.T) {
	db := newTestDB(t)
	ranking := services.NewRankingService(db, services.NewUserService(db))

	createTestUser(t, db, "top", 500)
	peer := createTestUser(t, db, "peer", 200)
	mine := createTestUser(t, db, "mine", 200)
	createTestUser(t, db, "bottom", 10)

	rank, err := ranking.UserRank(mine.ID)
	if err != nil {
		t.Fatalf("user rank: %v", err)
	}
	if rank != 2 {
		t.Fatalf("expected rank 2 (one strictly greater), got %d", rank)
	}

	peerRank, err := ranking.UserRank(peer.ID)
	if err != nil {
		t.Fatalf("peer rank: %v", err)
	}
	if peerRank != rank {
		t.Fatalf("tied users must share a rank: %d vs %d", peerRank, rank)
	}
}

func TestUserRankImprovesAfterScoring(t *testing.T) {
	db := newTestDB(t)
	users := services.NewUserService(db)
	ranking := services.NewRankingService(db, users)
	scoring := services.NewScoringService(db)

	createTestUser(t, db, "leader", 100)
	me := createTestUser(t, db, "climber", 0)
	quiz := createTestQuiz(t, db, "Fundamentals", 50, 50, 50)

	before, err := ranking.UserRank(me.ID)
	if err != nil {
		t.Fatalf("rank before: %v", err)
	}
	if _, err := scoring.SaveQuizResult(&models.UserQuizResult{
		UserID:         me.ID,
		QuizID:         quiz.ID,
		Score:          150,
		TotalQuestions: 3,
		CorrectAnswers: 3,
	}); err != nil {
		t.Fatalf("save result: %v", err)
	}
	after, err := ranking.UserRank(me.ID)
	if err != nil {
		t.Fatalf("rank after: %v", err)
	}
	if after >= before {
		t.Fatalf("expected rank to improve, got %d -> %d", before, after)
	}
	if after != 1 {
		t.Fatalf("expected rank 1 after overtaking, got %d", after)
	}
}

func TestUserRankForUnknownUserMaterializesProfile(t *testing.T) {
	db := newTestDB(t)
	ranking := services.NewRankingService(db, services.NewUserService(db))
	createTestUser(t, db, "scorer", 75)

	id := uuid.NewString()
	rank, err := ranking.UserRank(id)
	if err != nil {
		t.Fatalf("user rank: %v", err)
	}
	if rank != 2 {
		t.Fatalf("expected fresh user to rank behind the scorer, got %d", rank)
	}
	if reloadUser(t, db, id).TotalScore != 0 {
		t.Fatal("expected default profile with zero score")
	}
}
