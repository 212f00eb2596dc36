package models

import "time"

// Quiz is a course unit of multiple-choice questions.
type Quiz struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"index;not null" json:"category"`
	Difficulty  string `gorm:"type:varchar(16);check:difficulty IN ('easy','medium','hard')" json:"difficulty"`
	TimeLimit   int    `json:"time_limit" gorm:"default:60"` // seconds per question

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Question belongs to a quiz. Options are stored as a JSON array;
// CorrectAnswer is the index of the right option.
type Question struct {
	ID            string   `gorm:"primaryKey;type:uuid" json:"id"`
	QuizID        string   `gorm:"index;not null" json:"quiz_id"`
	QuestionText  string   `gorm:"type:text;not null" json:"question_text"`
	Options       []string `gorm:"serializer:json" json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Points        int      `json:"points" gorm:"default:10"`
	Order         int      `gorm:"column:question_order;not null" json:"order"`
}
