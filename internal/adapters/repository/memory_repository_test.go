package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

func TestInMemoryUserRepository(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	user, err := domain.NewFederatedUser("user-1", "reader@example.com", "Reader", "google")
	require.NoError(t, err)

	t.Run("Success: Create and look up", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByEmail(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.ID)

		got, err = repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", got.Email)
	})

	t.Run("Success: Returned users are copies", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		got.Name = "Changed"

		again, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Reader", again.Name)
	})

	t.Run("Fail: Duplicate email", func(t *testing.T) {
		dup, err := domain.NewFederatedUser("user-2", "reader@example.com", "Other", "google")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailAlreadyExists)
	})

	t.Run("Fail: Not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestInMemoryProgressRepository(t *testing.T) {
	repo := NewInMemoryProgressRepository()
	ctx := context.Background()

	empty, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	require.NoError(t, repo.Save(ctx, "user-1", domain.NewUserProgress("2026-01-03")))

	got, err := repo.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-03"}, got.IDs())
}

func TestNewRepositories(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop().Sugar()

	t.Run("Success: Memory backend", func(t *testing.T) {
		repos, err := NewRepositories(ctx, Options{Backend: BackendMemory}, log)
		require.NoError(t, err)
		defer repos.Close()

		assert.IsType(t, &InMemoryUserRepository{}, repos.Users)
		assert.IsType(t, &InMemoryProgressRepository{}, repos.Progress)
		assert.Nil(t, repos.DB)
		assert.NoError(t, repos.Ping(ctx))
	})

	t.Run("Success: SQLite backend is migrated", func(t *testing.T) {
		repos, err := NewRepositories(ctx, Options{Backend: BackendSQLite, SQLitePath: ":memory:"}, log)
		require.NoError(t, err)
		defer repos.Close()

		assert.IsType(t, &SQLUserRepository{}, repos.Users)
		require.NoError(t, repos.Ping(ctx))
		require.NoError(t, repos.Progress.Save(ctx, "user-1", domain.NewUserProgress("2026-01-03")))
	})

	t.Run("Success: Nil redis leaves progress uncached", func(t *testing.T) {
		repos, err := NewRepositories(ctx, Options{Backend: BackendMemory}, log)
		require.NoError(t, err)

		repos.WithCache(nil, log)
		assert.IsType(t, &InMemoryProgressRepository{}, repos.Progress)
	})

	t.Run("Fail: Unknown backend", func(t *testing.T) {
		_, err := NewRepositories(ctx, Options{Backend: "mongo"}, log)
		assert.Error(t, err)
	})
}
