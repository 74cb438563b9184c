package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	"github.com/teamtrack/attendance-service/internal/attendance/repository/postgres"
)

var userColumns = []string{"id", "username", "email", "password_hash", "is_admin", "created_at"}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := postgres.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-2", "alice", "alice@example.com", "hash", false, time.Now()))

		user, err := r.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-2", user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByUsername(ctx, "ghost")
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByUsername(ctx, "alice")
		assert.Error(t, err)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := postgres.NewUserRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		ID:           "user-2",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.IsAdmin, user.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, user))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.IsAdmin, user.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, user))
	})
}

func TestUserRepository_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := postgres.NewUserRepository(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	count, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUserRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := postgres.NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, username").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-1", "admin", "admin@example.com", "hash", true, time.Now()).
			AddRow("user-2", "alice", "alice@example.com", "hash", false, time.Now()))

	users, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, users[0].IsAdmin)
	assert.False(t, users[1].IsAdmin)
}

func TestUserRepository_SetAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := postgres.NewUserRepository(mock)

	mock.ExpectExec("UPDATE users SET is_admin").
		WithArgs("user-2", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, r.SetAdmin(context.Background(), "user-2", true))
}
