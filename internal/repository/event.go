package repository

import (
	"context"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// EventRepository 日历事件仓储接口
type EventRepository interface {
	BaseRepository
	Create(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.CalendarEvent, error)
}

// eventRepo 日历事件仓储实现
type eventRepo struct {
	*BaseRepo
}

// NewEventRepository 创建日历事件仓储
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 新增事件
func (r *eventRepo) Create(ctx context.Context, event *models.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Delete 按ID删除事件（ID不存在时静默跳过）
func (r *eventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CalendarEvent{}, "id = ?", id).Error
}

// List 按日期升序列出所有事件
func (r *eventRepo) List(ctx context.Context) ([]*models.CalendarEvent, error) {
	var events []*models.CalendarEvent
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&events).Error
	return events, err
}
