package models

import "time"

// UserQuizResult is the immutable record of one completed quiz attempt.
// Creating one always pairs with a ledger increment of Score (one transaction).
type UserQuizResult struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	QuizID         string    `gorm:"index;not null" json:"quiz_id"`
	Score          int64     `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null"`
	TimeSpent      int       `json:"time_spent" gorm:"default:0"` // seconds
	CompletedAt    time.Time `gorm:"index" json:"completed_at"`
}

// UserActivityResult records one completed mini-game session.
type UserActivityResult struct {
	ID          string                 `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string                 `gorm:"index;not null" json:"user_id"`
	ActivityID  string                 `gorm:"index;not null" json:"activity_id"`
	Score       int64                  `json:"score" gorm:"not null"`
	TimeSpent   int                    `json:"time_spent" gorm:"default:0"` // seconds
	GameState   map[string]interface{} `gorm:"serializer:json" json:"game_state,omitempty"`
	CompletedAt time.Time              `gorm:"index" json:"completed_at"`
}

// CyberLabResult records one completed lab simulation. Labs are identified by
// type only ("phishing", "malware", "social_engineering"); there is no stored
// lab definition, so no subject max-score cap applies.
type CyberLabResult struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	LabType        string    `gorm:"type:varchar(32);not null" json:"lab_type"`
	Score          int64     `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null"`
	TimeSpent      int       `json:"time_spent" gorm:"default:0"` // seconds
	CompletedAt    time.Time `gorm:"index" json:"completed_at"`
}
