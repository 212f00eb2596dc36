package models

import "time"

// Mini-game activity types supported by the client.
const (
	ActivityWordScramble = "word_scramble"
	ActivityNumberPuzzle = "number_puzzle"
	ActivityMemoryMatch  = "memory_match"
)

// Activity is a mini-game definition. GameData carries the type-specific
// configuration (word lists, puzzle sequences, memory grids) as JSON.
type Activity struct {
	ID           string                 `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string                 `gorm:"not null" json:"title"`
	Slug         string                 `gorm:"uniqueIndex" json:"slug"`
	Description  string                 `gorm:"type:text" json:"description"`
	Type         string                 `gorm:"type:varchar(32);not null" json:"type"`
	Category     string                 `gorm:"index;not null" json:"category"`
	Difficulty   string                 `gorm:"type:varchar(16)" json:"difficulty"`
	TimeEstimate string                 `json:"time_estimate"` // e.g. "5-10 min"
	GameData     map[string]interface{} `gorm:"serializer:json" json:"game_data,omitempty"`
	MaxScore     int64                  `json:"max_score" gorm:"default:100"`
	ImageURL     string                 `gorm:"type:text" json:"image_url"`
	IsNew        bool                   `json:"is_new" gorm:"default:false"`
	IsPopular    bool                   `json:"is_popular" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
