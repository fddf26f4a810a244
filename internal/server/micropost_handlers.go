package server

import (
	"microblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateMicropost handles POST /api/microposts
func (s *Server) CreateMicropost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.micropostService.Create(ctx, userID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeleteMicropost handles DELETE /api/microposts/:id. Only the author may
// delete a micropost.
func (s *Server) DeleteMicropost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.micropostService.Delete(ctx, userID, postID); delErr != nil {
		return respondServiceError(c, delErr)
	}

	return c.JSON(fiber.Map{
		"message": "Micropost deleted",
	})
}

// GetUserMicroposts handles GET /api/users/:id/microposts
func (s *Server) GetUserMicroposts(c *fiber.Ctx) error {
	ctx := c.Context()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 30)

	posts, err := s.micropostService.ListByUser(ctx, targetID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	count, err := s.micropostService.CountByUser(ctx, targetID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"microposts": posts,
		"count":      count,
	})
}

// GetFeed handles GET /api/feed. The feed contains the authenticated user's
// own microposts plus those of every user they follow, newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	page := parsePagination(c, 30)

	posts, err := s.micropostService.Feed(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"microposts": posts,
	})
}
