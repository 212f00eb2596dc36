package models

import (
	"time"

	"gorm.io/gorm"
)

// Team selections users can join. Nil selection means unaffiliated.
const (
	TeamRed   = "red"
	TeamWhite = "white"
)

// User is the learner profile. TotalScore is the cumulative score ledger:
// it only ever grows, and only via atomic SQL increments issued by the
// scoring service, never read-modify-write in Go.
type User struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`

	TotalScore int64 `json:"total_score" gorm:"default:0"`
	Streak     int   `json:"streak" gorm:"default:0"` // consecutive active days, maintained by the streak job

	TeamSelection *string    `json:"team_selection,omitempty"` // "red", "white", or nil
	LastActivity  *time.Time `json:"last_activity,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
