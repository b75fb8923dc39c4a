package domain

import "errors"

// Errors shared by repositories and the services settling points.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyApplied      = errors.New("talent already applied")
	ErrAlreadyCompleted    = errors.New("talent already completed")
)
