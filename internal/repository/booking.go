package repository

import (
	"context"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// BookingRepository 预约仓储接口
type BookingRepository interface {
	BaseRepository
	Create(ctx context.Context, booking *models.Booking) error
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Booking, error)
}

// bookingRepo 预约仓储实现
type bookingRepo struct {
	*BaseRepo
}

// NewBookingRepository 创建预约仓储
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 新增预约
func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// Cancel 按ID取消预约（ID不存在时静默跳过）
func (r *bookingRepo) Cancel(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id).Error
}

// List 按日期升序列出所有预约
func (r *bookingRepo) List(ctx context.Context) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&bookings).Error
	return bookings, err
}
