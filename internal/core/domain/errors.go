package domain

import "errors"

var (
	ErrInvalidDocument    = errors.New("invalid document number")
	ErrNameRequired       = errors.New("client name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmptySearchTerm    = errors.New("search term cannot be empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("user already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
)
