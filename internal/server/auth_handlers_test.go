package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog/internal/auth"
	"microblog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":                  "Example User",
				"email":                 "user@example.com",
				"password":              "password",
				"password_confirmation": "password",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "user@example.com").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"name":                  "Example User",
				"email":                 "exists@example.com",
				"password":              "password",
				"password_confirmation": "password",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "exists@example.com").
					Return(&models.User{ID: 1, Email: "exists@example.com"}, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid email",
			body: map[string]string{
				"name":                  "Example User",
				"email":                 "user@example,com",
				"password":              "password",
				"password_confirmation": "password",
			},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Password confirmation mismatch",
			body: map[string]string{
				"name":                  "Example User",
				"email":                 "user@example.com",
				"password":              "password",
				"password_confirmation": "different",
			},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)

			s := newTestServer(t, userRepo, new(MockRelationshipRepository), new(MockMicropostRepository))
			app := fiber.New()
			app.Post("/signup", s.Signup)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	digest, err := auth.HashPassword("password", auth.MinTestCost)
	require.NoError(t, err)

	existing := &models.User{
		ID:             1,
		Name:           "Example User",
		Email:          "user@example.com",
		PasswordDigest: digest,
	}

	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]interface{}{
				"email":    "user@example.com",
				"password": "password",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: map[string]interface{}{
				"email":    "user@example.com",
				"password": "wrongpass",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown email",
			body: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password",
			},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)

			s := newTestServer(t, userRepo, new(MockRelationshipRepository), new(MockMicropostRepository))
			app := fiber.New()
			app.Post("/login", s.Login)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLoginRememberMe(t *testing.T) {
	digest, err := auth.HashPassword("password", auth.MinTestCost)
	require.NoError(t, err)

	existing := &models.User{
		ID:             1,
		Name:           "Example User",
		Email:          "user@example.com",
		PasswordDigest: digest,
	}

	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
	userRepo.On("GetByID", mock.Anything, uint(1)).Return(existing, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newTestServer(t, userRepo, new(MockRelationshipRepository), new(MockMicropostRepository))
	app := fiber.New()
	app.Post("/login", s.Login)

	body, _ := json.Marshal(map[string]interface{}{
		"email":       "user@example.com",
		"password":    "password",
		"remember_me": true,
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotEmpty(t, payload["token"])
	assert.NotEmpty(t, payload["remember_token"])
	userRepo.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	existing := &models.User{ID: 7, Name: "Example User", Email: "user@example.com", RememberDigest: "stale"}

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(existing, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	s := newTestServer(t, userRepo, new(MockRelationshipRepository), new(MockMicropostRepository))
	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		c.Locals("userID", uint(7))
		return c.Next()
	}, s.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, existing.RememberDigest)
}
