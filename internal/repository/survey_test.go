package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyRepository_SeedIsIdempotent(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewSurveyRepository(db)
	ctx := context.Background()

	options := []string{"Go", "Java", "Python"}
	require.NoError(t, repo.Seed(ctx, options))
	require.NoError(t, repo.Seed(ctx, options))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// 按播种顺序返回
	assert.Equal(t, "Go", list[0].Text)
	assert.Equal(t, "Java", list[1].Text)
	assert.Equal(t, "Python", list[2].Text)
	for _, o := range list {
		assert.Zero(t, o.Votes)
	}
}

func TestSurveyRepository_VoteIncrementsSingleOption(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewSurveyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []string{"Go", "Java"}))
	list, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Vote(ctx, list[0].ID))
	require.NoError(t, repo.Vote(ctx, list[0].ID))
	require.NoError(t, repo.Vote(ctx, list[1].ID))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list[0].Votes)
	assert.Equal(t, int64(1), list[1].Votes)
}

func TestSurveyRepository_VoteUnknownIDLeavesCountersUnchanged(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewSurveyRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []string{"Go", "Java"}))
	require.NoError(t, repo.Vote(ctx, "no-such-id"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	for _, o := range list {
		assert.Zero(t, o.Votes)
	}
}
