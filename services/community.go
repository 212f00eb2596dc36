package services

import (
	"strings"
	"time"

	"cyber-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityService owns posts, likes and comments. Likes and comment counts
// are counter fields incremented with SQL arithmetic only.
type CommunityService struct {
	DB    *gorm.DB
	Users *UserService
}

func NewCommunityService(db *gorm.DB, users *UserService) *CommunityService {
	return &CommunityService{DB: db, Users: users}
}

// ListPosts returns the newest posts, capped by limit (default 50).
func (s *CommunityService) ListPosts(limit int) ([]models.CommunityPost, error) {
	if limit <= 0 {
		limit = 50
	}
	var posts []models.CommunityPost
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// CreatePost publishes a forum post under the author's current username.
func (s *CommunityService) CreatePost(userID, content string, tags []string) (*models.CommunityPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationErr("content", "must not be empty")
	}
	user, err := s.Users.RequireUser(userID)
	if err != nil {
		return nil, err
	}

	post := models.CommunityPost{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		Tags:      tags,
		CreatedAt: time.Now(),
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// LikePost bumps the like counter. Deliberately repeatable: there is no
// per-user like tracking, so the same caller can like a post many times.
func (s *CommunityService) LikePost(postID string) error {
	res := s.DB.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		Update("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("post")
	}
	return nil
}

// AddComment creates an immutable comment and bumps the post's comment count
// in the same transaction, keeping the counter equal to the comment cardinality.
func (s *CommunityService) AddComment(postID, userID, content string) (*models.PostComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationErr("content", "must not be empty")
	}
	if postID == "" {
		return nil, validationErr("postId", "required")
	}
	user, err := s.Users.RequireUser(userID)
	if err != nil {
		return nil, err
	}

	comment := models.PostComment{
		ID:       uuid.NewString(),
		PostID:   postID,
		UserID:   user.ID,
		Username: user.Username,
		Content:  content,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CommunityPost{}).
			Where("id = ?", postID).
			Update("comment_count", gorm.Expr("comment_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFoundErr("post")
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a post's comments, newest first.
func (s *CommunityService) ListComments(postID string) ([]models.PostComment, error) {
	var comments []models.PostComment
	err := s.DB.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}
