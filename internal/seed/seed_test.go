package seed

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository/repotest"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo, _ := repotest.New()
	ideas := services.NewIdeaService(repo.Ideas)

	first, err := Run(ctx, ideas, true)
	require.NoError(t, err)
	assert.Equal(t, len(Catalogue), first.Created)
	assert.Zero(t, first.Skipped)

	second, err := Run(ctx, ideas, false)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, len(Catalogue), second.Skipped)

	featured := true
	page, err := ideas.ListStatic(ctx, services.IdeaListQuery{Limit: 100, Featured: &featured})
	require.NoError(t, err)
	assert.Len(t, page.Ideas, len(Catalogue))
	for _, idea := range page.Ideas {
		assert.True(t, idea.IsAdminIdea)
		assert.Equal(t, "admin", idea.Origin)
	}
}
