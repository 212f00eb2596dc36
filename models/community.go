package models

import "time"

// CommunityPost is a forum post. Likes and CommentCount are counter fields
// mutated only by atomic SQL increments. CommentCount must always equal the
// number of PostComment rows referencing the post, enforced by incrementing
// inside the comment-create transaction, never by recomputation.
type CommunityPost struct {
	ID           string   `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string   `gorm:"index;not null" json:"user_id"`
	Username     string   `gorm:"not null" json:"username"` // denormalized snapshot for display
	Content      string   `gorm:"type:text;not null" json:"content"`
	Tags         []string `gorm:"serializer:json" json:"tags,omitempty"`
	Likes        int64    `json:"likes" gorm:"default:0"`
	CommentCount int64    `json:"comment_count" gorm:"default:0"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// PostComment is immutable once created.
type PostComment struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	PostID   string `gorm:"index;not null" json:"post_id"`
	UserID   string `gorm:"index;not null" json:"user_id"`
	Username string `gorm:"not null" json:"username"`
	Content  string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
