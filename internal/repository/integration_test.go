//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ideahub"),
		postgres.WithUsername("ideahub"),
		postgres.WithPassword("ideahub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestPostgresRepositories(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, repo.Users.Create(ctx, user))

	t.Run("duplicate email is a unique violation", func(t *testing.T) {
		dup := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "x", Role: models.RoleUser}
		assert.ErrorIs(t, repo.Users.Create(ctx, dup), repository.ErrDuplicate)
	})

	idea := &models.Idea{
		ID:          uuid.New(),
		Title:       "Mobile Coffee Cart",
		Description: "Espresso on wheels",
		Category:    "food-beverage",
		Status:      models.IdeaStatusPublished,
		UserID:      user.ID,
		Origin:      models.OriginCommunity,
		KeyFeatures: []string{"cart"},
		Tags:        []string{"coffee", "mobile"},
	}
	require.NoError(t, repo.Ideas.Create(ctx, idea))

	t.Run("search and tag filters", func(t *testing.T) {
		ideas, total, err := repo.Ideas.List(ctx, repository.IdeaFilter{Search: "COFFEE", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, ideas, 1)

		_, total, err = repo.Ideas.List(ctx, repository.IdeaFilter{Tag: "mobi"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		_, total, err = repo.Ideas.List(ctx, repository.IdeaFilter{Tag: `","`})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)

		_, total, err = repo.Ideas.List(ctx, repository.IdeaFilter{AdminOnly: true})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("save toggle adjusts the user counter", func(t *testing.T) {
		saved, err := repo.Ideas.ToggleSave(ctx, idea.ID, user.ID)
		require.NoError(t, err)
		assert.True(t, saved)

		saved, err = repo.Ideas.ToggleSave(ctx, idea.ID, user.ID)
		require.NoError(t, err)
		assert.False(t, saved)

		u, err := repo.Users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, u.SavedIdeas)
	})

	t.Run("helpful toggle is an involution", func(t *testing.T) {
		review := &models.Review{ID: uuid.New(), IdeaID: idea.ID, UserID: user.ID, Comment: "Nice", Status: models.ReviewStatusApproved}
		require.NoError(t, repo.Reviews.Create(ctx, review))

		count, voted, err := repo.Reviews.ToggleHelpful(ctx, review.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.True(t, voted)

		count, voted, err = repo.Reviews.ToggleHelpful(ctx, review.ID, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.False(t, voted)

		again := &models.Review{ID: uuid.New(), IdeaID: idea.ID, UserID: user.ID, Comment: "Again", Status: models.ReviewStatusApproved}
		assert.ErrorIs(t, repo.Reviews.Create(ctx, again), repository.ErrDuplicate)
	})

	t.Run("update never re-creates a row", func(t *testing.T) {
		ghost := *idea
		ghost.ID = uuid.New()
		assert.ErrorIs(t, repo.Ideas.Update(ctx, &ghost), repository.ErrNotFound)
		_, err := repo.Ideas.GetByID(ctx, ghost.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete cascades and reports missing rows", func(t *testing.T) {
		saved, err := repo.Ideas.ToggleSave(ctx, idea.ID, user.ID)
		require.NoError(t, err)
		require.True(t, saved)

		require.NoError(t, repo.Ideas.Delete(ctx, idea.ID))
		u, err := repo.Users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, u.SavedIdeas)
		exists, err := repo.Reviews.ExistsForIdeaAndUser(ctx, idea.ID, user.ID)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.ErrorIs(t, repo.Ideas.Delete(ctx, idea.ID), repository.ErrNotFound)
	})
}
