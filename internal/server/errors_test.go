package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breedwise/breedwise/internal/comparison"
	"github.com/breedwise/breedwise/internal/matching"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid quiz answer",
			err:  &matching.InvalidQuizAnswerError{Cause: errors.New("missing field")},
			want: http.StatusBadRequest,
		},
		{
			name: "invalid identity",
			err:  &matching.InvalidIdentityError{Reason: "both set"},
			want: http.StatusBadRequest,
		},
		{
			name: "too many breeds",
			err:  &comparison.TooManyBreedsError{Count: 5},
			want: http.StatusBadRequest,
		},
		{
			name: "malformed collaborator response",
			err:  &matching.MalformedResponseError{Reason: "4 matches"},
			want: http.StatusBadGateway,
		},
		{
			name: "collaborator unavailable",
			err:  &matching.UnavailableError{Cause: errors.New("timeout")},
			want: http.StatusGatewayTimeout,
		},
		{
			name: "wrapped malformed response",
			err:  fmt.Errorf("submit failed: %w", &matching.MalformedResponseError{Reason: "bad json"}),
			want: http.StatusBadGateway,
		},
		{
			name: "email conflict",
			err:  &ErrEmailAlreadyExists{Email: "a@b.com"},
			want: http.StatusConflict,
		},
		{
			name: "bad credentials",
			err:  &ErrInvalidCredentials{},
			want: http.StatusUnauthorized,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
