package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth wraps a handler so it only runs with a valid bearer token.
// The authenticated user ID lands in the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.bearerUserID(r)
		if !ok {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// bearerUserID extracts and validates the Authorization header, if present.
func (s *Server) bearerUserID(r *http.Request) (uuid.UUID, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, false
	}

	claims, err := s.jwtService.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// userIDFromContext returns the authenticated user ID set by requireAuth.
func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
