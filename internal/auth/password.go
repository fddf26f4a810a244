// Package auth provides password hashing and remember-token utilities.
// Digests are computed once when a credential is set, never on the check
// path, and the cost is an explicit parameter rather than package state.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when the caller does not configure one.
const DefaultCost = bcrypt.DefaultCost

// MinTestCost is the cheapest bcrypt cost, for tests and seed data.
const MinTestCost = bcrypt.MinCost

// HashPassword returns the bcrypt digest of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches the stored digest.
// A missing digest never matches and never errors.
func CheckPassword(digest, password string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
