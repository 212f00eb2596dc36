package handlers

import (
	"strconv"

	"cyber-learning-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCommunityRoutes(app *fiber.App, community *services.CommunityService) {
	app.Get("/api/community-posts", func(c *fiber.Ctx) error {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return badRequest(c, "limit must be an integer")
			}
			limit = parsed
		}
		posts, err := community.ListPosts(limit)
		if err != nil {
			return respondError(c, err, "failed to get community posts")
		}
		return c.JSON(posts)
	})

	app.Post("/api/community-posts", func(c *fiber.Ctx) error {
		var req struct {
			UserID  string   `json:"userId"`
			Content string   `json:"content"`
			Tags    []string `json:"tags"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid post data")
		}
		post, err := community.CreatePost(req.UserID, req.Content, req.Tags)
		if err != nil {
			return respondError(c, err, "failed to create post")
		}
		return c.JSON(post)
	})

	app.Get("/api/community-posts/:id/comments", func(c *fiber.Ctx) error {
		comments, err := community.ListComments(c.Params("id"))
		if err != nil {
			return respondError(c, err, "failed to get comments")
		}
		return c.JSON(comments)
	})

	app.Post("/api/community-posts/:id/like", func(c *fiber.Ctx) error {
		if err := community.LikePost(c.Params("id")); err != nil {
			return respondError(c, err, "failed to like post")
		}
		return c.JSON(fiber.Map{"success": true})
	})

	app.Post("/api/post-comments", func(c *fiber.Ctx) error {
		var req struct {
			PostID  string `json:"postId"`
			UserID  string `json:"userId"`
			Content string `json:"content"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid comment data")
		}
		comment, err := community.AddComment(req.PostID, req.UserID, req.Content)
		if err != nil {
			return respondError(c, err, "failed to create comment")
		}
		return c.JSON(comment)
	})
}
