package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/exercise-hub/internal/models"
)

func TestEventRepository_ListSortedByDateAscending(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewEventRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
	}
	require.NoError(t, repo.Create(ctx, &models.CalendarEvent{Title: "年会", Date: day(20), Location: "大礼堂"}))
	require.NoError(t, repo.Create(ctx, &models.CalendarEvent{Title: "周会", Date: day(2), Location: "会议室A"}))
	require.NoError(t, repo.Create(ctx, &models.CalendarEvent{Title: "培训", Date: day(9), Location: "会议室B"}))

	// 按活动日期升序
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "周会", events[0].Title)
	assert.Equal(t, "培训", events[1].Title)
	assert.Equal(t, "年会", events[2].Title)
}

func TestEventRepository_DeleteUnknownIDIsNoop(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewEventRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.CalendarEvent{Title: "活动", Date: time.Now()}))
	require.NoError(t, repo.Delete(ctx, "no-such-id"))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
