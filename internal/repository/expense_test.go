package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/exercise-hub/internal/models"
)

func TestExpenseRepository_ListNewestFirst(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}
	require.NoError(t, repo.Create(ctx, &models.Expense{Description: "早餐", Category: "餐饮", Amount: 12.5, Date: day(1)}))
	require.NoError(t, repo.Create(ctx, &models.Expense{Description: "打车", Category: "交通", Amount: 30, Date: day(3)}))
	require.NoError(t, repo.Create(ctx, &models.Expense{Description: "电影", Category: "娱乐", Amount: 45, Date: day(2)}))

	// 按日期降序
	expenses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 3)
	assert.Equal(t, "打车", expenses[0].Description)
	assert.Equal(t, "电影", expenses[1].Description)
	assert.Equal(t, "早餐", expenses[2].Description)
}

func TestExpenseRepository_DeleteUnknownIDIsNoop(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Expense{Description: "午餐", Amount: 20, Date: time.Now()}))
	require.NoError(t, repo.Delete(ctx, "no-such-id"))

	expenses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}
