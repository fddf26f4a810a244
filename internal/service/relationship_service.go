package service

import (
	"context"

	"microblog/internal/cache"
	"microblog/internal/models"
	"microblog/internal/observability"
	"microblog/internal/repository"
)

// RelationshipService provides follow-graph business logic.
type RelationshipService struct {
	relRepo  repository.RelationshipRepository
	userRepo repository.UserRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(relRepo repository.RelationshipRepository, userRepo repository.UserRepository) *RelationshipService {
	return &RelationshipService{relRepo: relRepo, userRepo: userRepo}
}

// Follow creates the follow edge from follower to followed. Following a user
// twice is a successful no-op; following yourself is rejected.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return models.NewValidationError("Cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	if err := s.relRepo.Create(ctx, followerID, followedID); err != nil {
		return err
	}

	cache.InvalidateFollowing(ctx, followerID)
	observability.FollowOperations.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the follow edge; unfollowing someone you don't follow is a no-op.
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if err := s.relRepo.Delete(ctx, followerID, followedID); err != nil {
		return err
	}

	cache.InvalidateFollowing(ctx, followerID)
	observability.FollowOperations.WithLabelValues("unfollow").Inc()
	return nil
}

// IsFollowing reports whether follower currently follows followed.
func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.relRepo.Exists(ctx, followerID, followedID)
}

// Followers returns the users following the given user.
func (s *RelationshipService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relRepo.Followers(ctx, userID)
}

// Following returns the users the given user follows.
func (s *RelationshipService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relRepo.Following(ctx, userID)
}
