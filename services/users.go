package services

import (
	"fmt"
	"time"

	"cyber-learning-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetOrCreateUser resolves a user by ID, materializing a default profile on
// first access. Read paths (profile, stats, rank) use this; write paths that
// attribute data to a user (results, comments) require the row to already
// exist and go through RequireUser instead.
func (s *UserService) GetOrCreateUser(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = models.User{
		ID:        id,
		Username:  "learner-" + shortID(id),
		FirstName: "Alex",
		LastName:  "User",
		Email:     fmt.Sprintf("learner-%s@example.com", shortID(id)),
	}
	now := time.Now()
	user.LastActivity = &now
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	fmt.Printf("👤 Default profile created for first access: %s\n", user.ID)
	return &user, nil
}

// RequireUser resolves a user by ID or returns NotFoundError.
func (s *UserService) RequireUser(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundErr("user")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new profile explicitly (used by the seed flow).
func (s *UserService) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.DB.Create(user).Error
}

// SelectTeam sets the user's red/white affiliation.
func (s *UserService) SelectTeam(userID, team string) error {
	if team != models.TeamRed && team != models.TeamWhite {
		return validationErr("team", `must be "red" or "white"`)
	}
	res := s.DB.Model(&models.User{}).Where("id = ?", userID).Update("team_selection", team)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("user")
	}
	return nil
}

// GetTeam returns the user's current team selection, nil when unaffiliated.
func (s *UserService) GetTeam(userID string) (*string, error) {
	user, err := s.GetOrCreateUser(userID)
	if err != nil {
		return nil, err
	}
	return user.TeamSelection, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
