package repository

import (
	"context"
	"testing"

	"microblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Olly", Email: "ollY@example.Com", PasswordDigest: "digest"}
	require.NoError(t, repo.Create(ctx, user))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "olly@example.com", stored.Email)
}

func TestUserRepository_DuplicateEmailCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "First", Email: "user@example.com", PasswordDigest: "d"}))

	err := repo.Create(ctx, &models.User{Name: "Second", Email: "USER@EXAMPLE.COM", PasswordDigest: "d"})
	require.Error(t, err)

	verr, ok := err.(*models.ValidationError)
	require.True(t, ok, "expected a ValidationError, got %T", err)
	assert.Equal(t, "email", verr.Fields[0].Field)
	assert.Equal(t, "has already been taken", verr.Fields[0].Message)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := createTestUser(t, db, "Olly", "olly@example.com")

	// case-varied lookup still resolves
	found, err := repo.GetByEmail(ctx, "OLLY@Example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// missing email is nil, nil
	found, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	victim := createTestUser(t, db, "Victim", "victim@example.com")
	other := createTestUser(t, db, "Other", "other@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Micropost{Content: "post", UserID: victim.ID}).Error)
	}
	require.NoError(t, db.Create(&models.Micropost{Content: "survives", UserID: other.ID}).Error)
	require.NoError(t, db.Create(&models.Relationship{FollowerID: victim.ID, FollowedID: other.ID}).Error)
	require.NoError(t, db.Create(&models.Relationship{FollowerID: other.ID, FollowedID: victim.ID}).Error)

	require.NoError(t, userRepo.Delete(ctx, victim.ID))

	var postCount int64
	db.Model(&models.Micropost{}).Count(&postCount)
	assert.EqualValues(t, 1, postCount, "exactly the victim's posts are removed")

	var relCount int64
	db.Model(&models.Relationship{}).Count(&relCount)
	assert.EqualValues(t, 0, relCount, "both directions of relationships are removed")

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	assert.EqualValues(t, 1, userCount)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 12345)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "A", "a@example.com")
	createTestUser(t, db, "B", "b@example.com")
	createTestUser(t, db, "C", "c@example.com")

	users, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "C", users[0].Name)
}
