package handlers

import (
	"cyber-learning-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App, content *services.ContentService, seed *services.SeedService) {
	app.Get("/api/quizzes", func(c *fiber.Ctx) error {
		quizzes, err := content.ListQuizzes()
		if err != nil {
			return respondError(c, err, "failed to get quizzes")
		}
		return c.JSON(quizzes)
	})

	app.Get("/api/quiz/:id", func(c *fiber.Ctx) error {
		quiz, err := content.GetQuiz(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get quiz")
		}
		return c.JSON(quiz)
	})

	app.Get("/api/quiz/:id/questions", func(c *fiber.Ctx) error {
		questions, err := content.QuizQuestions(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get questions")
		}
		return c.JSON(questions)
	})

	app.Get("/api/activities", func(c *fiber.Ctx) error {
		activities, err := content.ListActivities()
		if err != nil {
			return respondError(c, err, "failed to get activities")
		}
		return c.JSON(activities)
	})

	app.Get("/api/activity/:id", func(c *fiber.Ctx) error {
		activity, err := content.GetActivity(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get activity")
		}
		return c.JSON(activity)
	})

	app.Get("/api/team-challenges/:team", func(c *fiber.Ctx) error {
		challenges, err := content.TeamChallenges(c.Params("team"))
		if err != nil {
			return respondError(c, err, "failed to get team challenges")
		}
		return c.JSON(challenges)
	})

	app.Post("/api/seed", func(c *fiber.Ctx) error {
		user, err := seed.SeedLearningContent()
		if err != nil {
			return respondError(c, err, "failed to seed data")
		}
		return c.JSON(fiber.Map{
			"message": "Cybersecurity learning data created successfully",
			"userId":  user.ID,
		})
	})
}
