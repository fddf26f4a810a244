// Package validation provides input validation utilities
package validation

import (
	"regexp"
	"strings"

	"microblog/internal/models"
)

const (
	// MaxNameLen bounds the user display name.
	MaxNameLen = 50
	// MaxEmailLen bounds the email address.
	MaxEmailLen = 255
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 6
)

// emailRegex accepts conventional addresses: letters/digits/_.+- in the
// local part, a dotted domain with no consecutive dots and no trailing dot.
var emailRegex = regexp.MustCompile(`^(?i)[a-z0-9_+\-.]+@[a-z0-9\-]+(\.[a-z0-9\-]+)*\.[a-z]+$`)

// NormalizeEmail returns the canonical stored form of an email address:
// trimmed and lowercased. Every write path must normalize before hitting
// the unique index.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName checks presence and length of a user name.
func ValidateName(name string) *models.FieldError {
	if strings.TrimSpace(name) == "" {
		return &models.FieldError{Field: "name", Message: "can't be blank"}
	}
	if len(name) > MaxNameLen {
		return &models.FieldError{Field: "name", Message: "is too long (maximum is 50 characters)"}
	}
	return nil
}

// ValidateEmail checks presence, length and format of an email address.
func ValidateEmail(email string) *models.FieldError {
	if strings.TrimSpace(email) == "" {
		return &models.FieldError{Field: "email", Message: "can't be blank"}
	}
	if len(email) > MaxEmailLen {
		return &models.FieldError{Field: "email", Message: "is too long (maximum is 255 characters)"}
	}
	if !emailRegex.MatchString(email) {
		return &models.FieldError{Field: "email", Message: "is invalid"}
	}
	return nil
}

// ValidatePassword checks presence, minimum length, and confirmation match.
// An all-whitespace password counts as blank regardless of its length.
func ValidatePassword(password, confirmation string) []models.FieldError {
	var errs []models.FieldError
	if strings.TrimSpace(password) == "" {
		errs = append(errs, models.FieldError{Field: "password", Message: "can't be blank"})
	} else if len(password) < MinPasswordLen {
		errs = append(errs, models.FieldError{Field: "password", Message: "is too short (minimum is 6 characters)"})
	}
	if password != confirmation {
		errs = append(errs, models.FieldError{Field: "password_confirmation", Message: "doesn't match password"})
	}
	return errs
}

// ValidateMicropostContent checks presence and length of micropost content.
func ValidateMicropostContent(content string) *models.FieldError {
	if strings.TrimSpace(content) == "" {
		return &models.FieldError{Field: "content", Message: "can't be blank"}
	}
	if len(content) > models.MaxMicropostLen {
		return &models.FieldError{Field: "content", Message: "is too long (maximum is 140 characters)"}
	}
	return nil
}

// UserInput carries the candidate attributes for a user validation pass.
// Password rules apply only when SetPassword is true, i.e. when the caller
// is creating credentials or changing them.
type UserInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	SetPassword          bool
}

// ValidateUser runs every applicable rule and returns the full set of field
// failures, or nil when the candidate is valid. It never touches storage;
// uniqueness is checked separately at save time.
func ValidateUser(in UserInput) *models.ValidationError {
	verr := &models.ValidationError{}
	if fe := ValidateName(in.Name); fe != nil {
		verr.Fields = append(verr.Fields, *fe)
	}
	if fe := ValidateEmail(in.Email); fe != nil {
		verr.Fields = append(verr.Fields, *fe)
	}
	if in.SetPassword {
		verr.Fields = append(verr.Fields, ValidatePassword(in.Password, in.PasswordConfirmation)...)
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
