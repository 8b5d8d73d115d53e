package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrInvalidEmailDomain = errors.New("invalid email domain")

	// Messaging errors
	ErrEmptyMessage      = errors.New("message body is empty")
	ErrRecipientNotFound = errors.New("recipient not found")

	// Listing / request errors
	ErrListingNotFound = errors.New("listing not found")
	ErrRequestNotFound = errors.New("request not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
