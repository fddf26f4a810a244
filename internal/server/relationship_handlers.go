package server

import (
	"microblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if followErr := s.relationshipService.Follow(ctx, userID, targetID); followErr != nil {
		return respondServiceError(c, followErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unfollowErr := s.relationshipService.Unfollow(ctx, userID, targetID); unfollowErr != nil {
		return respondServiceError(c, unfollowErr)
	}

	return c.JSON(fiber.Map{
		"following": false,
	})
}

// GetFollowStatus handles GET /api/users/:id/follow. It reports whether the
// authenticated user is following the target user.
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.relationshipService.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"following": following,
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.relationshipService.Followers(ctx, targetID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"users": followers,
		"count": len(followers),
	})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.relationshipService.Following(ctx, targetID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"users": following,
		"count": len(following),
	})
}
