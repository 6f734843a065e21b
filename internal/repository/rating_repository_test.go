package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRating(swapID, raterID, ratedID string, score int) *models.Rating {
	return &models.Rating{
		SwapRequestID: swapID,
		RaterID:       raterID,
		RatedUserID:   ratedID,
		Rating:        score,
	}
}

func TestRatingRepository_Insert(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRatingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "ratings")

	rating := newTestRating("swap-1", "user-a", "user-b", 5)
	err := repo.Insert(ctx, rating)

	require.NoError(t, err)
	assert.NotEmpty(t, rating.ID)
	assert.NotZero(t, rating.CreatedAt)
}

func TestRatingRepository_FindBySwapAndRater(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRatingRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds an existing rating", func(t *testing.T) {
		tdb.ClearCollection(t, "ratings")

		rating := newTestRating("swap-1", "user-a", "user-b", 4)
		require.NoError(t, repo.Insert(ctx, rating))

		found, err := repo.FindBySwapAndRater(ctx, "swap-1", "user-a")

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, rating.ID, found.ID)
	})

	t.Run("returns nil without error when no rating exists", func(t *testing.T) {
		tdb.ClearCollection(t, "ratings")

		found, err := repo.FindBySwapAndRater(ctx, "swap-1", "user-a")

		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("same swap rated by the other participant is a different rating", func(t *testing.T) {
		tdb.ClearCollection(t, "ratings")

		require.NoError(t, repo.Insert(ctx, newTestRating("swap-1", "user-a", "user-b", 5)))

		found, err := repo.FindBySwapAndRater(ctx, "swap-1", "user-b")

		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestRatingRepository_FindByRatedUser(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRatingRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns every rating the user received", func(t *testing.T) {
		tdb.ClearCollection(t, "ratings")

		require.NoError(t, repo.Insert(ctx, newTestRating("swap-1", "user-a", "user-b", 5)))
		require.NoError(t, repo.Insert(ctx, newTestRating("swap-2", "user-c", "user-b", 3)))
		require.NoError(t, repo.Insert(ctx, newTestRating("swap-3", "user-b", "user-a", 4)))

		ratings, err := repo.FindByRatedUser(ctx, "user-b")

		require.NoError(t, err)
		assert.Len(t, ratings, 2)
	})

	t.Run("returns empty slice for unrated user", func(t *testing.T) {
		tdb.ClearCollection(t, "ratings")

		ratings, err := repo.FindByRatedUser(ctx, "user-z")

		require.NoError(t, err)
		assert.NotNil(t, ratings)
		assert.Empty(t, ratings)
	})
}

func TestRatingRepository_Counts(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewRatingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "ratings")

	require.NoError(t, repo.Insert(ctx, newTestRating("swap-1", "user-a", "user-b", 5)))
	require.NoError(t, repo.Insert(ctx, newTestRating("swap-2", "user-a", "user-c", 4)))
	require.NoError(t, repo.Insert(ctx, newTestRating("swap-3", "user-b", "user-a", 3)))

	given, err := repo.CountByRater(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 2, given)

	received, err := repo.CountByRatedUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 1, received)

	none, err := repo.CountByRater(ctx, "user-z")
	require.NoError(t, err)
	assert.Equal(t, 0, none)
}
