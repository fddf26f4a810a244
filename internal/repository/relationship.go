package repository

import (
	"context"
	"errors"

	"microblog/internal/models"
	"microblog/internal/observability"

	"gorm.io/gorm"
)

// RelationshipRepository defines the interface for follow-graph data operations
type RelationshipRepository interface {
	Create(ctx context.Context, followerID, followedID uint) error
	Delete(ctx context.Context, followerID, followedID uint) error
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	FollowedIDs(ctx context.Context, followerID uint) ([]uint, error)
	Followers(ctx context.Context, userID uint) ([]models.User, error)
	Following(ctx context.Context, userID uint) ([]models.User, error)
}

// relationshipRepository implements RelationshipRepository
type relationshipRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db, log: observability.NewRepoLogger("relationships")}
}

// Create inserts the follow edge. A duplicate pair is a successful no-op:
// the unique composite index rejects the second insert and the error is
// swallowed here, which makes follow idempotent under concurrent writers.
func (r *relationshipRepository) Create(ctx context.Context, followerID, followedID uint) error {
	defer observability.TrackQuery("create", "relationships")()

	rel := &models.Relationship{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.WithContext(ctx).Create(rel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "create", map[string]interface{}{
		"follower_id": followerID,
		"followed_id": followedID,
	})
	return nil
}

// Delete removes the follow edge if present; deleting a missing edge is a no-op.
func (r *relationshipRepository) Delete(ctx context.Context, followerID, followedID uint) error {
	defer observability.TrackQuery("delete", "relationships")()

	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Relationship{}).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "delete", map[string]interface{}{
		"follower_id": followerID,
		"followed_id": followedID,
	})
	return nil
}

func (r *relationshipRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	defer observability.TrackQuery("exists", "relationships")()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Relationship{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// FollowedIDs returns the set of user IDs the given user follows, computed
// in a single query so feed callers can reuse it as one membership predicate.
func (r *relationshipRepository) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	defer observability.TrackQuery("followed_ids", "relationships")()

	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Relationship{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *relationshipRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	defer observability.TrackQuery("followers", "relationships")()

	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN relationships r ON users.id = r.follower_id").
		Where("r.followed_id = ?", userID).
		Order("users.id").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *relationshipRepository) Following(ctx context.Context, userID uint) ([]models.User, error) {
	defer observability.TrackQuery("following", "relationships")()

	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN relationships r ON users.id = r.followed_id").
		Where("r.follower_id = ?", userID).
		Order("users.id").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
