package handlers

import (
	"cyber-learning-system/models"
	"cyber-learning-system/services"

	"github.com/gofiber/fiber/v2"
)

// Result submission endpoints. Each creates one immutable result record and
// credits the score ledger atomically; the created record is echoed back.
func SetupResultRoutes(app *fiber.App, scoring *services.ScoringService) {
	app.Post("/api/quiz/result", func(c *fiber.Ctx) error {
		var req struct {
			UserID         string `json:"userId"`
			QuizID         string `json:"quizId"`
			Score          int64  `json:"score"`
			TotalQuestions int    `json:"totalQuestions"`
			CorrectAnswers int    `json:"correctAnswers"`
			TimeSpent      int    `json:"timeSpent"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid quiz result data")
		}
		result, err := scoring.SaveQuizResult(&models.UserQuizResult{
			UserID:         req.UserID,
			QuizID:         req.QuizID,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			CorrectAnswers: req.CorrectAnswers,
			TimeSpent:      req.TimeSpent,
		})
		if err != nil {
			return respondError(c, err, "failed to save quiz result")
		}
		return c.JSON(result)
	})

	app.Post("/api/activity/result", func(c *fiber.Ctx) error {
		var req struct {
			UserID     string                 `json:"userId"`
			ActivityID string                 `json:"activityId"`
			Score      int64                  `json:"score"`
			TimeSpent  int                    `json:"timeSpent"`
			GameState  map[string]interface{} `json:"gameState"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid activity result data")
		}
		result, err := scoring.SaveActivityResult(&models.UserActivityResult{
			UserID:     req.UserID,
			ActivityID: req.ActivityID,
			Score:      req.Score,
			TimeSpent:  req.TimeSpent,
			GameState:  req.GameState,
		})
		if err != nil {
			return respondError(c, err, "failed to save activity result")
		}
		return c.JSON(result)
	})

	app.Post("/api/team-progress", func(c *fiber.Ctx) error {
		var req struct {
			UserID      string `json:"userId"`
			ChallengeID string `json:"challengeId"`
			Score       int64  `json:"score"`
			Completed   bool   `json:"completed"`
			TimeSpent   int    `json:"timeSpent"`
			Attempts    int    `json:"attempts"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid progress data")
		}
		progress, err := scoring.SaveTeamProgress(&models.UserTeamProgress{
			UserID:      req.UserID,
			ChallengeID: req.ChallengeID,
			Score:       req.Score,
			Completed:   req.Completed,
			TimeSpent:   req.TimeSpent,
			Attempts:    req.Attempts,
		})
		if err != nil {
			return respondError(c, err, "failed to save progress")
		}
		return c.JSON(progress)
	})

	app.Post("/api/cyber-lab-results", func(c *fiber.Ctx) error {
		var req struct {
			UserID         string `json:"userId"`
			LabType        string `json:"labType"`
			Score          int64  `json:"score"`
			TotalQuestions int    `json:"totalQuestions"`
			CorrectAnswers int    `json:"correctAnswers"`
			TimeSpent      int    `json:"timeSpent"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid lab result data")
		}
		result, err := scoring.SaveCyberLabResult(&models.CyberLabResult{
			UserID:         req.UserID,
			LabType:        req.LabType,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			CorrectAnswers: req.CorrectAnswers,
			TimeSpent:      req.TimeSpent,
		})
		if err != nil {
			return respondError(c, err, "failed to save lab result")
		}
		return c.JSON(result)
	})
}
