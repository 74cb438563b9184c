package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	t.Run("success", func(t *testing.T) {
		env.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		env.userRepo.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		env.userRepo.EXPECT().Count(gomock.Any()).Return(0, nil)
		env.userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/register",
			strings.NewReader(`{"username": "alice", "email": "alice@example.com", "password": "password123"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, true, user["is_admin"]) // first registered user
	})

	t.Run("username taken", func(t *testing.T) {
		existing := &domain.User{ID: "existing", Username: "alice"}
		env.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(existing, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/register",
			strings.NewReader(`{"username": "alice", "email": "other@example.com", "password": "password123"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "username already exists", body["message"])
	})

	t.Run("short password rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/register",
			strings.NewReader(`{"username": "bob", "email": "bob@example.com", "password": "short"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:           "user-2",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		env.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			strings.NewReader(`{"username": "alice", "password": "password123"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["access_token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		env.userRepo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			strings.NewReader(`{"username": "alice", "password": "nope-nope"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "invalid credentials", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			strings.NewReader(`{"username": "alice"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	user := &domain.User{ID: "user-2", Username: "alice", Email: "alice@example.com"}
	token := env.tokenFor(t, user)

	env.userRepo.EXPECT().GetByID(gomock.Any(), "user-2").Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	me, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", me["username"])
}
