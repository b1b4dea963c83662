package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/breedwise/breedwise/internal/config"
	"github.com/breedwise/breedwise/internal/db"
)

type fakeUserStore struct {
	users map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*db.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, email, passwordHash string) (*db.User, error) {
	u := &db.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	return f.users[email], nil
}

func (f *fakeUserStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func testAuthHandler(store userStore) *AuthHandler {
	passwords := &config.PasswordConfig{BcryptCost: 10}
	return NewAuthHandler(store, passwords, testJWTService("test-secret"))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeUserStore()
	handler := testAuthHandler(store)

	creds := credentialsRequest{Email: "dog@example.com", Password: "password123"}
	rec := postJSON(t, handler.handleRegister, creds)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "dog@example.com", registered.Email)

	// Stored hash is not the raw password
	assert.NotEqual(t, "password123", store.users["dog@example.com"].PasswordHash)

	rec = postJSON(t, handler.handleLogin, creds)
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.Equal(t, registered.UserID, loggedIn.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	handler := testAuthHandler(store)
	creds := credentialsRequest{Email: "dog@example.com", Password: "password123"}

	rec := postJSON(t, handler.handleRegister, creds)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.handleRegister, creds)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	handler := testAuthHandler(newFakeUserStore())

	tests := []struct {
		name  string
		creds credentialsRequest
	}{
		{"missing email", credentialsRequest{Password: "password123"}},
		{"invalid email", credentialsRequest{Email: "not-an-email", Password: "password123"}},
		{"short password", credentialsRequest{Email: "dog@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.handleRegister, tt.creds)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginBadCredentials(t *testing.T) {
	store := newFakeUserStore()
	handler := testAuthHandler(store)

	rec := postJSON(t, handler.handleRegister, credentialsRequest{Email: "dog@example.com", Password: "password123"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Wrong password and unknown account get the same response
	rec = postJSON(t, handler.handleLogin, credentialsRequest{Email: "dog@example.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, handler.handleLogin, credentialsRequest{Email: "nobody@example.com", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	svc := testJWTService("test-secret")
	s := &Server{jwtService: svc, logger: zap.NewNop()}

	var gotUserID uuid.UUID
	protected := s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	userID := uuid.New()
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)

	for _, header := range []string{"", "Bearer", "Bearer bad-token", "Basic " + token} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		protected(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}
