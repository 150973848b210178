package service

import (
	"errors"
	"fmt"
)

// Domain errors; handlers map them to status codes.
var (
	ErrFilmNotFound       = errors.New("movie not found")
	ErrNotInList          = errors.New("movie is not in the list")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

// ValidationError rejected or missing input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
