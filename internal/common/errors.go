package common

import "errors"

// Business logic errors
var (
	// ErrNotFound covers both a missing record and a record owned by
	// another user. The two cases are deliberately indistinguishable
	// so existence never leaks across owners.
	ErrNotFound = errors.New("resource not found")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
