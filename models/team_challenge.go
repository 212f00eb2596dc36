package models

import "time"

// TeamChallenge is a red/white team exercise (simulation, quiz or lab).
type TeamChallenge struct {
	ID          string                 `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `gorm:"type:text" json:"description"`
	Team        string                 `gorm:"type:varchar(8);index;not null;check:team IN ('red','white')" json:"team"`
	Category    string                 `json:"category"` // e.g. "penetration_testing", "incident_response"
	Difficulty  string                 `gorm:"type:varchar(16)" json:"difficulty"`
	Type        string                 `gorm:"type:varchar(16)" json:"type"` // "simulation", "quiz", "lab"
	Content     map[string]interface{} `gorm:"serializer:json" json:"content,omitempty"`
	MaxScore    int64                  `json:"max_score" gorm:"default:100"`
	UnlockLevel int                    `json:"unlock_level" gorm:"default:1"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// UserTeamProgress records one completed challenge attempt. Immutable once
// written; its Score feeds the user's score ledger in the same transaction.
type UserTeamProgress struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	ChallengeID string    `gorm:"index;not null" json:"challenge_id"`
	Score       int64     `json:"score" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	TimeSpent   int       `json:"time_spent" gorm:"default:0"` // seconds
	Attempts    int       `json:"attempts" gorm:"default:1"`
	CompletedAt time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
