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

func intPtr(v int) *int { return &v }

type reviewFixture struct {
	svc   *ReviewService
	idea  *models.Idea
	alice *models.User
	bob   *models.User
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	repo, _ := repotest.New()
	ctx := context.Background()

	alice := &models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	bob := &models.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, repo.Users.Create(ctx, alice))
	require.NoError(t, repo.Users.Create(ctx, bob))

	idea := &models.Idea{ID: uuid.New(), Title: "Reviewed", Status: models.IdeaStatusPublished, UserID: alice.ID}
	require.NoError(t, repo.Ideas.Create(ctx, idea))

	return &reviewFixture{
		svc:   NewReviewService(repo.Reviews, repo.Ideas, NewModerationService()),
		idea:  idea,
		alice: alice,
		bob:   bob,
	}
}

func TestReviewCreate(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, f.alice, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "Solid plan", Rating: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusApproved, review.Status)
	assert.Equal(t, "Alice", review.UserName)
	assert.Empty(t, f.svc.Notice(review))

	_, err = f.svc.Create(ctx, f.alice, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "Again"})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Equal(t, "You have already reviewed this idea", err.Error())

	_, err = f.svc.Create(ctx, f.bob, &dto.CreateReviewRequest{IdeaID: uuid.NewString(), Comment: "Where?"})
	assert.ErrorIs(t, err, ErrIdeaNotFound)

	_, err = f.svc.Create(ctx, f.bob, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "Too good", Rating: intPtr(6)})
	assert.Equal(t, "rating must be at most 5", validationMessage(t, err))
}

func TestReviewList_HidesPendingAndSummarizes(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.alice, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "Great", Rating: intPtr(5)})
	require.NoError(t, err)
	pending, err := f.svc.Create(ctx, f.bob, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "visit https://deals.example now", Rating: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusPending, pending.Status)
	assert.Equal(t, "Links are not allowed in reviews. It will be visible after moderation.", f.svc.Notice(pending))

	reviews, summary, err := f.svc.List(ctx, f.idea.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Great", reviews[0].Comment)
	assert.Equal(t, dto.ReviewSummary{AverageRating: 5, TotalReviews: 1, RatedReviews: 1}, summary)
}

func TestReviewOwnership(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, f.alice, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "Mine"})
	require.NoError(t, err)

	_, foreign := f.svc.Update(ctx, f.bob, review.ID, &dto.UpdateReviewRequest{Comment: "Hijack"})
	_, missing := f.svc.Update(ctx, f.bob, uuid.New(), &dto.UpdateReviewRequest{Comment: "Hijack"})
	assert.ErrorIs(t, foreign, ErrReviewNotOwned)
	assert.Equal(t, foreign.Error(), missing.Error())
	assert.ErrorIs(t, f.svc.Delete(ctx, f.bob, review.ID), ErrReviewNotOwned)

	updated, err := f.svc.Update(ctx, f.alice, review.ID, &dto.UpdateReviewRequest{Comment: "Edited", Rating: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Comment)
	assert.Equal(t, 3, *updated.Rating)

	require.NoError(t, f.svc.Delete(ctx, f.alice, review.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, f.alice, review.ID), ErrReviewNotOwned)
}

func TestToggleHelpful_IsInvolution(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, f.alice, &dto.CreateReviewRequest{IdeaID: f.idea.ID.String(), Comment: "Useful"})
	require.NoError(t, err)
	req := &dto.HelpfulRequest{ReviewID: review.ID.String()}

	first, err := f.svc.ToggleHelpful(ctx, f.bob, req)
	require.NoError(t, err)
	assert.Equal(t, &dto.HelpfulResponse{HelpfulCount: 1, Voted: true}, first)

	second, err := f.svc.ToggleHelpful(ctx, f.bob, req)
	require.NoError(t, err)
	assert.Equal(t, &dto.HelpfulResponse{HelpfulCount: 0, Voted: false}, second)

	_, err = f.svc.ToggleHelpful(ctx, f.bob, &dto.HelpfulRequest{ReviewID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
