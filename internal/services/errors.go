package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidSlug        = errors.New("invalid slug format")
	ErrUserIDRequired     = errors.New("user id required")
	ErrRelayNotConfigured = errors.New("webhook url not configured")
)
