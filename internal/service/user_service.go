// Package service contains the business logic layered over the repositories.
package service

import (
	"context"

	"microblog/internal/auth"
	"microblog/internal/cache"
	"microblog/internal/models"
	"microblog/internal/observability"
	"microblog/internal/repository"
	"microblog/internal/validation"
)

// UserService provides account registration, authentication and profile logic.
type UserService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// RegisterInput carries the attributes for a signup attempt.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// UpdateProfileInput carries the attributes for a profile update. Password
// fields are validated and re-digested only when Password is non-empty.
type UpdateProfileInput struct {
	UserID               uint
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// NewUserService returns a new UserService hashing passwords at the given bcrypt cost.
func NewUserService(userRepo repository.UserRepository, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = auth.DefaultCost
	}
	return &UserService{userRepo: userRepo, bcryptCost: bcryptCost}
}

// Register validates the candidate, digests the password once, and persists
// the user with a normalized email. Nothing is written when any rule fails.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if verr := validation.ValidateUser(validation.UserInput{
		Name:                 in.Name,
		Email:                in.Email,
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
		SetPassword:          true,
	}); verr != nil {
		return nil, verr
	}

	// Friendly pre-check; the unique index is the real guard under races.
	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, (&models.ValidationError{}).Add("email", "has already been taken")
	}

	digest, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordDigest: digest,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.UsersRegistered.Inc()
	return user, nil
}

// Authenticate returns the user matching email and password, or nil when the
// credentials are wrong. Credential failure is never an error value.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordDigest, password) {
		return nil, nil
	}
	return user, nil
}

// Remember issues a fresh remember token for persistent sessions and stores
// its digest on the user row. The plaintext token is returned to the caller
// exactly once.
func (s *UserService) Remember(ctx context.Context, userID uint) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	token := auth.NewRememberToken()
	digest, err := auth.HashPassword(token, s.bcryptCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user.RememberDigest = digest
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	return token, nil
}

// Forget drops the stored remember digest so old tokens stop authenticating.
func (s *UserService) Forget(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.RememberDigest = ""
	return s.userRepo.Update(ctx, user)
}

// AuthenticatedBy reports whether the remember token matches the user's
// stored digest. False, never an error, when the user is missing or no
// digest has been set.
func (s *UserService) AuthenticatedBy(ctx context.Context, userID uint, rememberToken string) bool {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return false
	}
	return auth.Authenticated(user.RememberDigest, rememberToken)
}

// UpdateProfile applies name/email changes and, when a new password is
// supplied, re-validates and re-digests the credentials.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	if in.Name != "" {
		name = in.Name
	}
	email := user.Email
	if in.Email != "" {
		email = in.Email
	}
	setPassword := in.Password != "" || in.PasswordConfirmation != ""

	if verr := validation.ValidateUser(validation.UserInput{
		Name:                 name,
		Email:                email,
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
		SetPassword:          setPassword,
	}); verr != nil {
		return nil, verr
	}

	if in.Email != "" && validation.NormalizeEmail(in.Email) != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, (&models.ValidationError{}).Add("email", "has already been taken")
		}
	}

	user.Name = name
	user.Email = email
	if setPassword {
		digest, err := auth.HashPassword(in.Password, s.bcryptCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.PasswordDigest = digest
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Destroy removes the user and, through the repository transaction, all of
// their microposts and relationships in both directions.
func (s *UserService) Destroy(ctx context.Context, userID uint) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	cache.InvalidateFollowing(ctx, userID)
	observability.UsersDestroyed.Inc()
	return nil
}

// GetUserByID returns one user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}
