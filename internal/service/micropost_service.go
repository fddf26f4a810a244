package service

import (
	"context"

	"microblog/internal/cache"
	"microblog/internal/models"
	"microblog/internal/observability"
	"microblog/internal/repository"
	"microblog/internal/validation"
)

// MicropostService provides micropost creation, deletion and feed composition.
type MicropostService struct {
	postRepo repository.MicropostRepository
	relRepo  repository.RelationshipRepository
}

// NewMicropostService returns a new MicropostService.
func NewMicropostService(postRepo repository.MicropostRepository, relRepo repository.RelationshipRepository) *MicropostService {
	return &MicropostService{postRepo: postRepo, relRepo: relRepo}
}

// Create validates and persists a micropost for the given author.
func (s *MicropostService) Create(ctx context.Context, userID uint, content string) (*models.Micropost, error) {
	if fe := validation.ValidateMicropostContent(content); fe != nil {
		return nil, &models.ValidationError{Fields: []models.FieldError{*fe}}
	}

	post := &models.Micropost{Content: content, UserID: userID}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.MicropostsCreated.Inc()
	return s.postRepo.GetByID(ctx, post.ID)
}

// Delete removes a micropost. Only the author may delete their own post.
func (s *MicropostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own microposts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ListByUser returns a page of the user's own microposts, newest first.
func (s *MicropostService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

// CountByUser returns how many microposts the user has authored.
func (s *MicropostService) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.postRepo.CountByUser(ctx, userID)
}

// Feed composes the microposts visible to the user: their own plus those of
// everyone they follow, newest first. The followed-id set is resolved once
// per call, from the cache when warm and from a single relationship query
// otherwise, then applied as one membership predicate. With the cache cold
// and unavailable the repository falls back to the equivalent single-query
// IN-subselect form.
func (s *MicropostService) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	if ids, ok := cache.GetFollowedIDs(ctx, userID); ok {
		return s.postRepo.FeedByIDs(ctx, userID, ids, limit, offset)
	}

	if cache.GetClient() == nil {
		return s.postRepo.Feed(ctx, userID, limit, offset)
	}

	ids, err := s.relRepo.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	cache.SetFollowedIDs(ctx, userID, ids)
	return s.postRepo.FeedByIDs(ctx, userID, ids, limit, offset)
}
