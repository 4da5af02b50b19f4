package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Member errors
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidMemberState = errors.New("invalid member status")
)

// Ledger errors
var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInvalidMethod        = errors.New("unknown payment method")
	ErrInvalidWeek          = errors.New("week number must be a positive integer")
	ErrInvalidStatus        = errors.New("unknown contribution status")
)
