package model

import "errors"

var (
	// Auth related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("authentication not configured")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Catalog related errors
	ErrServiceNotFound = errors.New("service not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
