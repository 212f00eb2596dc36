package models

import "time"

// Achievement kinds
const (
	AchievementBadge     = "badge"
	AchievementMilestone = "milestone"
	AchievementStreak    = "streak"
)

// Achievement is an awarded instance, one row per user per trigger code.
type Achievement struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Code        string    `gorm:"index;not null" json:"code"` // trigger code, unique per user
	Type        string    `gorm:"type:varchar(16);not null" json:"type"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	IconName    string    `json:"icon_name"` // FontAwesome icon name
	EarnedAt    time.Time `json:"earned_at" gorm:"autoCreateTime"`
}

// AchievementTrigger defines a threshold that auto-awards an achievement.
// Thresholds are checked against the user's aggregate counters after every
// score-earning event and by the periodic sweep worker.
type AchievementTrigger struct {
	Code        string
	Type        string
	Title       string
	Description string
	IconName    string
	Threshold   map[string]int64 // e.g. {"total_score": 500}, {"completed_quizzes": 10}
}

// Predefined achievement triggers
var AchievementTriggers = []AchievementTrigger{
	{
		Code:        "FIRST_QUIZ",
		Type:        AchievementBadge,
		Title:       "First Steps",
		Description: "Completed your first quiz",
		IconName:    "fa-graduation-cap",
		Threshold:   map[string]int64{"completed_quizzes": 1},
	},
	{
		Code:        "QUIZ_MASTER",
		Type:        AchievementBadge,
		Title:       "Quiz Master",
		Description: "Completed 10 quizzes",
		IconName:    "fa-brain",
		Threshold:   map[string]int64{"completed_quizzes": 10},
	},
	{
		Code:        "GAME_ON",
		Type:        AchievementBadge,
		Title:       "Game On",
		Description: "Finished your first security mini-game",
		IconName:    "fa-gamepad",
		Threshold:   map[string]int64{"completed_activities": 1},
	},
	{
		Code:        "SCORE_500",
		Type:        AchievementMilestone,
		Title:       "Rising Defender",
		Description: "Reached 500 total points",
		IconName:    "fa-shield-alt",
		Threshold:   map[string]int64{"total_score": 500},
	},
	{
		Code:        "SCORE_2500",
		Type:        AchievementMilestone,
		Title:       "Cyber Sentinel",
		Description: "Reached 2500 total points",
		IconName:    "fa-user-shield",
		Threshold:   map[string]int64{"total_score": 2500},
	},
	{
		Code:        "WEEK_STREAK",
		Type:        AchievementStreak,
		Title:       "Unbroken Watch",
		Description: "Stayed active 7 days in a row",
		IconName:    "fa-fire",
		Threshold:   map[string]int64{"streak": 7},
	},
}
