package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/breedwise/breedwise/internal/config"
	"github.com/breedwise/breedwise/internal/db"
)

// userStore is the subset of db operations the auth handler needs.
type userStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	store     userStore
	passwords *config.PasswordConfig
	jwt       *JWTService
	validate  *validator.Validate
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(store userStore, passwords *config.PasswordConfig, jwt *JWTService) *AuthHandler {
	return &AuthHandler{
		store:     store,
		passwords: passwords,
		jwt:       jwt,
		validate:  validator.New(),
	}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// handleRegister creates an account and returns a token
func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and a password of at least 8 characters are required")
		return
	}

	exists, err := h.store.CheckEmailExists(r.Context(), req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		err := &ErrEmailAlreadyExists{Email: req.Email}
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	hash, err := h.passwords.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Email, hash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

// handleLogin authenticates an account and returns a token
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	// Same response whether the account is missing or the password is wrong
	if user == nil || !h.passwords.VerifyPassword(req.Password, user.PasswordHash) {
		authErr := &ErrInvalidCredentials{}
		writeError(w, HTTPStatus(authErr), authErr.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *db.User) {
	token, err := h.jwt.GenerateToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	writeJSON(w, status, authResponse{Token: token, UserID: user.ID, Email: user.Email})
}

// writeJSON and writeError mirror the Server helpers for handlers that do not
// hang off the Server struct.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
