package handlers

import (
	"strconv"

	"cyber-learning-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, ranking *services.RankingService) {
	app.Get("/api/leaderboard", func(c *fiber.Ctx) error {
		limit := 100
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return badRequest(c, "limit must be an integer")
			}
			limit = parsed
		}
		entries, err := ranking.Leaderboard(limit)
		if err != nil {
			return respondError(c, err, "failed to get leaderboard")
		}
		return c.JSON(entries)
	})
}
