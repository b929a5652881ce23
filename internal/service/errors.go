package service

import (
	"errors"

	"serenity-backend/internal/repository"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAnswers     = errors.New("more answers than questions")
	ErrEmptyMessage       = errors.New("message cannot be empty")
	ErrEmptyEntry         = errors.New("journal entry cannot be empty")
	ErrTherapistSuspended = errors.New("therapist is suspended")
	ErrInvalidDuration    = errors.New("duration must be positive")
)
