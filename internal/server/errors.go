// Package server provides the HTTP REST API for breedwise.
package server

import (
	"errors"
	"net/http"

	"github.com/breedwise/breedwise/internal/comparison"
	"github.com/breedwise/breedwise/internal/matching"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return "email already registered: " + e.Email
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Request-side contract violations map to 4xx; collaborator failures map to
// 502/504 so callers can tell a bad request from a bad upstream.
func HTTPStatus(err error) int {
	var (
		invalidAnswer   *matching.InvalidQuizAnswerError
		invalidIdentity *matching.InvalidIdentityError
		malformed       *matching.MalformedResponseError
		unavailable     *matching.UnavailableError
		tooMany         *comparison.TooManyBreedsError
		emailExists     *ErrEmailAlreadyExists
		badCredentials  *ErrInvalidCredentials
	)

	switch {
	case errors.As(err, &invalidAnswer), errors.As(err, &invalidIdentity), errors.As(err, &tooMany):
		return http.StatusBadRequest
	case errors.As(err, &malformed):
		return http.StatusBadGateway
	case errors.As(err, &unavailable):
		return http.StatusGatewayTimeout
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
