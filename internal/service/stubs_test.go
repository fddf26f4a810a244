package service

import (
	"context"

	"microblog/internal/models"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

type relationshipRepoStub struct {
	createFn      func(context.Context, uint, uint) error
	deleteFn      func(context.Context, uint, uint) error
	existsFn      func(context.Context, uint, uint) (bool, error)
	followedIDsFn func(context.Context, uint) ([]uint, error)
	followersFn   func(context.Context, uint) ([]models.User, error)
	followingFn   func(context.Context, uint) ([]models.User, error)
}

func (s *relationshipRepoStub) Create(ctx context.Context, followerID, followedID uint) error {
	return s.createFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followedID)
}
func (s *relationshipRepoStub) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followedIDsFn(ctx, followerID)
}
func (s *relationshipRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *relationshipRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}

type micropostRepoStub struct {
	createFn      func(context.Context, *models.Micropost) error
	getByIDFn     func(context.Context, uint) (*models.Micropost, error)
	deleteFn      func(context.Context, uint) error
	listByUserFn  func(context.Context, uint, int, int) ([]models.Micropost, error)
	countByUserFn func(context.Context, uint) (int64, error)
	feedFn        func(context.Context, uint, int, int) ([]models.Micropost, error)
	feedByIDsFn   func(context.Context, uint, []uint, int, int) ([]models.Micropost, error)
}

func (s *micropostRepoStub) Create(ctx context.Context, post *models.Micropost) error {
	return s.createFn(ctx, post)
}
func (s *micropostRepoStub) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	return s.getByIDFn(ctx, id)
}
func (s *micropostRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *micropostRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *micropostRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *micropostRepoStub) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	return s.feedFn(ctx, userID, limit, offset)
}
func (s *micropostRepoStub) FeedByIDs(ctx context.Context, userID uint, followedIDs []uint, limit, offset int) ([]models.Micropost, error) {
	return s.feedByIDsFn(ctx, userID, followedIDs, limit, offset)
}
