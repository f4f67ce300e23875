package entity

import "errors"

// Domain errors
var (
	// Request errors
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingField   = errors.New("required field is missing")

	// Conversation errors
	ErrSessionExpired = errors.New("session expired or not started")

	// Model errors
	ErrTransport = errors.New("model transport failure")
	ErrParse     = errors.New("model reply could not be parsed")
)
