package repository

import (
	"context"
	"errors"
	"time"

	"microblog/internal/models"
	"microblog/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// MicropostRepository defines the interface for micropost data operations
type MicropostRepository interface {
	Create(ctx context.Context, post *models.Micropost) error
	GetByID(ctx context.Context, id uint) (*models.Micropost, error)
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error)
	FeedByIDs(ctx context.Context, userID uint, followedIDs []uint, limit, offset int) ([]models.Micropost, error)
}

// micropostRepository implements MicropostRepository
type micropostRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewMicropostRepository creates a new micropost repository
func NewMicropostRepository(db *gorm.DB) MicropostRepository {
	return &micropostRepository{db: db, log: observability.NewRepoLogger("microposts")}
}

func (r *micropostRepository) Create(ctx context.Context, post *models.Micropost) error {
	defer observability.TrackQuery("create", "microposts")()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "create", map[string]interface{}{
		"micropost_id": post.ID,
		"user_id":      post.UserID,
	})
	return nil
}

func (r *micropostRepository) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	defer observability.TrackQuery("get_by_id", "microposts")()

	var post models.Micropost
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Micropost", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *micropostRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "microposts")()

	if err := r.db.WithContext(ctx).Delete(&models.Micropost{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return models.NewInternalError(err)
	}
	r.log.LogWrite(ctx, "delete", map[string]interface{}{"micropost_id": id})
	return nil
}

func (r *micropostRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	defer observability.TrackQuery("list_by_user", "microposts")()

	var posts []models.Micropost
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *micropostRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	defer observability.TrackQuery("count_by_user", "microposts")()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Micropost{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// Feed returns the microposts visible to the user: their own posts plus
// posts by everyone they follow, newest first. The followed set is a single
// IN subselect so the whole feed is one filtering query, never a per-post
// lookup. A self-referencing edge cannot duplicate a post because the OR
// predicate matches each row at most once.
func (r *micropostRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	span, ctx := observability.NewSpan(ctx, "repository.microposts.feed")
	defer span.End()
	span.AddAttributes(attribute.Int64("user.id", int64(userID)))

	start := time.Now()
	defer func() {
		observability.FeedQueryLatency.Observe(time.Since(start).Seconds())
	}()

	followedIDs := r.db.Model(&models.Relationship{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	var posts []models.Micropost
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? OR user_id IN (?)", userID, followedIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error; err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// FeedByIDs is the feed query for callers that already hold the followed-id
// set, typically from the cache. Semantics match Feed exactly.
func (r *micropostRepository) FeedByIDs(ctx context.Context, userID uint, followedIDs []uint, limit, offset int) ([]models.Micropost, error) {
	span, ctx := observability.NewSpan(ctx, "repository.microposts.feed_by_ids")
	defer span.End()
	span.AddAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int("feed.followed_count", len(followedIDs)),
	)

	start := time.Now()
	defer func() {
		observability.FeedQueryLatency.Observe(time.Since(start).Seconds())
	}()

	query := r.db.WithContext(ctx).Preload("User")
	if len(followedIDs) == 0 {
		query = query.Where("user_id = ?", userID)
	} else {
		query = query.Where("user_id = ? OR user_id IN (?)", userID, followedIDs)
	}

	var posts []models.Micropost
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error; err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
