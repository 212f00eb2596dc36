package handlers

import (
	"cyber-learning-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, users *services.UserService, stats *services.StatsService,
	ranking *services.RankingService, achievements *services.AchievementService,
	scoring *services.ScoringService) {

	app.Get("/api/user/:id", func(c *fiber.Ctx) error {
		user, err := users.GetOrCreateUser(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get user")
		}
		return c.JSON(user)
	})

	app.Get("/api/user/:id/stats", func(c *fiber.Ctx) error {
		userStats, err := stats.GetUserStats(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get user stats")
		}
		return c.JSON(userStats)
	})

	app.Get("/api/user/:id/rank", func(c *fiber.Ctx) error {
		rank, err := ranking.UserRank(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get user rank")
		}
		return c.JSON(fiber.Map{"rank": rank})
	})

	app.Get("/api/user/:id/achievements", func(c *fiber.Ctx) error {
		list, err := achievements.ListForUser(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get achievements")
		}
		return c.JSON(list)
	})

	app.Get("/api/user/:id/team", func(c *fiber.Ctx) error {
		team, err := users.GetTeam(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get user team")
		}
		return c.JSON(fiber.Map{"team": team})
	})

	app.Post("/api/user/:id/team", func(c *fiber.Ctx) error {
		var req struct {
			Team string `json:"team"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid JSON body")
		}
		if err := users.SelectTeam(c.Params("id"), req.Team); err != nil {
			return respondError(c, err, "failed to update user team")
		}
		return c.JSON(fiber.Map{"success": true})
	})

	app.Get("/api/user/:id/quiz-results", func(c *fiber.Ctx) error {
		results, err := scoring.UserQuizResults(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get quiz results")
		}
		return c.JSON(results)
	})

	app.Get("/api/user/:id/activity-results", func(c *fiber.Ctx) error {
		results, err := scoring.UserActivityResults(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get activity results")
		}
		return c.JSON(results)
	})

	app.Get("/api/user/:id/cyber-lab-results", func(c *fiber.Ctx) error {
		results, err := scoring.UserCyberLabResults(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get cyber lab results")
		}
		return c.JSON(results)
	})
}
