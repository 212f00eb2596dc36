package services

import (
	"cyber-learning-system/models"

	"gorm.io/gorm"
)

// RankingService derives ordinal positions from the score ledger. One rank
// definition is used everywhere: competition ranking, i.e.
// rank = 1 + count(users with a strictly greater total score), so tied users
// share a rank. Display order for ties is earlier signup first, then ID.
type RankingService struct {
	DB    *gorm.DB
	Users *UserService
}

func NewRankingService(db *gorm.DB, users *UserService) *RankingService {
	return &RankingService{DB: db, Users: users}
}

// LeaderboardEntry is one row of the public leaderboard.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	TotalScore int64   `json:"total_score"`
	Team       *string `json:"team_selection,omitempty"`
	Streak     int     `json:"streak"`
}

// UserRank returns the user's competition rank. The lookup follows the
// get-or-create contract, so a brand-new user ranks behind every scorer.
func (s *RankingService) UserRank(userID string) (int, error) {
	user, err := s.Users.GetOrCreateUser(userID)
	if err != nil {
		return 0, err
	}
	var higher int64
	if err := s.DB.Model(&models.User{}).
		Where("total_score > ?", user.TotalScore).
		Count(&higher).Error; err != nil {
		return 0, err
	}
	return int(higher) + 1, nil
}

// Leaderboard returns up to limit users ordered by score. Ranks are assigned
// with the same competition semantics as UserRank: ties share a rank and the
// next distinct score resumes at its positional index.
func (s *RankingService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return []LeaderboardEntry{}, nil
	}

	var users []models.User
	if err := s.DB.
		Order("total_score DESC, created_at ASC, id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	rank := 0
	var prevScore int64
	for i, u := range users {
		if i == 0 || u.TotalScore != prevScore {
			rank = i + 1
			prevScore = u.TotalScore
		}
		entries[i] = LeaderboardEntry{
			Rank:       rank,
			UserID:     u.ID,
			Username:   u.Username,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			TotalScore: u.TotalScore,
			Team:       u.TeamSelection,
			Streak:     u.Streak,
		}
	}
	return entries, nil
}
