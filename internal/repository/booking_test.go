package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/exercise-hub/internal/models"
)

func TestBookingRepository_ListSortedByDateAscending(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}
	require.NoError(t, repo.Create(ctx, &models.Booking{Client: "王芳", Service: "理发", Date: day(15)}))
	require.NoError(t, repo.Create(ctx, &models.Booking{Client: "李明", Service: "按摩", Date: day(3)}))
	require.NoError(t, repo.Create(ctx, &models.Booking{Client: "张伟", Service: "美甲", Date: day(8)}))

	// 按预约日期升序
	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "李明", bookings[0].Client)
	assert.Equal(t, "张伟", bookings[1].Client)
	assert.Equal(t, "王芳", bookings[2].Client)
}

func TestBookingRepository_CancelRemovesSingleBooking(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	keep := &models.Booking{Client: "保留", Service: "咨询", Date: time.Now()}
	require.NoError(t, repo.Create(ctx, keep))

	extra := &models.Booking{Client: "临时", Service: "咨询", Date: time.Now()}
	require.NoError(t, repo.Create(ctx, extra))
	require.NoError(t, repo.Cancel(ctx, extra.ID))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, keep.ID, bookings[0].ID)

	// 未知ID静默跳过
	require.NoError(t, repo.Cancel(ctx, "no-such-id"))
	bookings, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
