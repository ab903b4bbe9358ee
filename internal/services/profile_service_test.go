package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository/repotest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	repo, _ := repotest.New()
	svc := NewProfileService(repo.Users)
	ctx := context.Background()

	ada := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	bob := &models.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, repo.Users.Create(ctx, ada))
	require.NoError(t, repo.Users.Create(ctx, bob))

	profile, err := svc.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "", profile.Bio)
	assert.Equal(t, 0, profile.Stats.Credits)

	t.Run("email owned by someone else", func(t *testing.T) {
		_, err := svc.Update(ctx, ada.ID, &dto.UpdateProfileRequest{Name: "Ada", Email: "BOB@example.com"})
		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("update persists projection", func(t *testing.T) {
		updated, err := svc.Update(ctx, ada.ID, &dto.UpdateProfileRequest{Name: "Ada L", Email: "ada@example.com", Bio: "Builder", Age: 36})
		require.NoError(t, err)
		assert.Equal(t, "Ada L", updated.Name)

		again, err := svc.Get(ctx, ada.ID)
		require.NoError(t, err)
		assert.Equal(t, "Builder", again.Bio)
		assert.Equal(t, 36, again.Age)
	})

	t.Run("stats clamps", func(t *testing.T) {
		_, err := svc.UpdateStats(ctx, ada.ID, &dto.UpdateStatsRequest{})
		assert.ErrorIs(t, err, ErrNoStatsFields)

		neg, over, five := -3, 140, 5
		stats, err := svc.UpdateStats(ctx, ada.ID, &dto.UpdateStatsRequest{Credits: &neg, CompletionPercentage: &over, PurchasedIdeas: &five})
		require.NoError(t, err)
		assert.Equal(t, dto.ProfileStats{Credits: 0, CompletionPercentage: 100, PurchasedIdeas: 5}, *stats)
	})

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
