package server

import (
	"context"
	"testing"

	"microblog/internal/auth"
	"microblog/internal/config"
	"microblog/internal/models"
	"microblog/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockRelationshipRepository is a mock of the RelationshipRepository interface
type MockRelationshipRepository struct {
	mock.Mock
}

func (m *MockRelationshipRepository) Create(ctx context.Context, followerID, followedID uint) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) Delete(ctx context.Context, followerID, followedID uint) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *MockRelationshipRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRelationshipRepository) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockRelationshipRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockRelationshipRepository) Following(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockMicropostRepository is a mock of the MicropostRepository interface
type MockMicropostRepository struct {
	mock.Mock
}

func (m *MockMicropostRepository) Create(ctx context.Context, post *models.Micropost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockMicropostRepository) GetByID(ctx context.Context, id uint) (*models.Micropost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Micropost), args.Error(1)
}

func (m *MockMicropostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMicropostRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.Micropost), args.Error(1)
}

func (m *MockMicropostRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMicropostRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]models.Micropost, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]models.Micropost), args.Error(1)
}

func (m *MockMicropostRepository) FeedByIDs(ctx context.Context, userID uint, followedIDs []uint, limit, offset int) ([]models.Micropost, error) {
	args := m.Called(ctx, userID, followedIDs, limit, offset)
	return args.Get(0).([]models.Micropost), args.Error(1)
}

// newTestServer builds a Server around mock repositories with a low-cost
// bcrypt configuration suitable for tests.
func newTestServer(t *testing.T, userRepo *MockUserRepository, relRepo *MockRelationshipRepository, postRepo *MockMicropostRepository) *Server {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:  "test_secret",
		BcryptCost: auth.MinTestCost,
		Env:        "test",
	}

	s := &Server{
		config:   cfg,
		userRepo: userRepo,
		relRepo:  relRepo,
		postRepo: postRepo,
	}
	s.userService = service.NewUserService(userRepo, cfg.BcryptCost)
	s.relationshipService = service.NewRelationshipService(relRepo, userRepo)
	s.micropostService = service.NewMicropostService(postRepo, relRepo)
	return s
}
