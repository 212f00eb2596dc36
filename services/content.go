package services

import (
	"cyber-learning-system/models"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ContentService manages the learning catalog: quizzes with their questions,
// mini-game activities and team challenges.
type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

// ListQuizzes returns the catalog, newest first.
func (s *ContentService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.DB.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

// GetQuiz resolves one quiz by ID.
func (s *ContentService) GetQuiz(id string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.DB.Where("id = ?", id).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundErr("quiz")
		}
		return nil, err
	}
	return &quiz, nil
}

// QuizQuestions returns a quiz's questions in display order.
func (s *ContentService) QuizQuestions(quizID string) ([]models.Question, error) {
	var questions []models.Question
	err := s.DB.Where("quiz_id = ?", quizID).Order("question_order ASC").Find(&questions).Error
	return questions, err
}

// CreateQuiz inserts a quiz definition, deriving its slug from the title.
func (s *ContentService) CreateQuiz(quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	if quiz.Slug == "" {
		quiz.Slug = slug.Make(quiz.Title)
	}
	return s.DB.Create(quiz).Error
}

// CreateQuestion appends a question to an existing quiz.
func (s *ContentService) CreateQuestion(question *models.Question) error {
	var count int64
	if err := s.DB.Model(&models.Quiz{}).Where("id = ?", question.QuizID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFoundErr("quiz")
	}
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	return s.DB.Create(question).Error
}

// ListActivities returns all mini-games, newest first.
func (s *ContentService) ListActivities() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.Order("created_at DESC").Find(&activities).Error
	return activities, err
}

// GetActivity resolves one mini-game by ID.
func (s *ContentService) GetActivity(id string) (*models.Activity, error) {
	var activity models.Activity
	if err := s.DB.Where("id = ?", id).First(&activity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, notFoundErr("activity")
		}
		return nil, err
	}
	return &activity, nil
}

// CreateActivity inserts a mini-game definition.
func (s *ContentService) CreateActivity(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Slug == "" {
		activity.Slug = slug.Make(activity.Title)
	}
	return s.DB.Create(activity).Error
}

// TeamChallenges lists the challenges available to one team, newest first.
func (s *ContentService) TeamChallenges(team string) ([]models.TeamChallenge, error) {
	if team != models.TeamRed && team != models.TeamWhite {
		return nil, validationErr("team", `must be "red" or "white"`)
	}
	var challenges []models.TeamChallenge
	err := s.DB.Where("team = ?", team).Order("created_at DESC").Find(&challenges).Error
	return challenges, err
}

// CreateTeamChallenge inserts a challenge definition.
func (s *ContentService) CreateTeamChallenge(challenge *models.TeamChallenge) error {
	if challenge.ID == "" {
		challenge.ID = uuid.NewString()
	}
	return s.DB.Create(challenge).Error
}
