package repository

import (
	"context"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// TaskRepository 任务清单仓储接口
type TaskRepository interface {
	BaseRepository
	Create(ctx context.Context, task *models.TaskItem) error
	Delete(ctx context.Context, id string) error
	ToggleDone(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.TaskItem, error)
}

// taskRepo 任务清单仓储实现
type taskRepo struct {
	*BaseRepo
}

// NewTaskRepository 创建任务清单仓储
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 新增任务
func (r *taskRepo) Create(ctx context.Context, task *models.TaskItem) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Delete 按ID删除任务（ID不存在时静默跳过）
func (r *taskRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.TaskItem{}, "id = ?", id).Error
}

// ToggleDone 切换完成状态（ID不存在时静默跳过）
func (r *taskRepo) ToggleDone(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.TaskItem{}).
		Where("id = ?", id).
		UpdateColumn("done", gorm.Expr("NOT done")).Error
}

// List 按录入顺序列出所有任务
func (r *taskRepo) List(ctx context.Context) ([]*models.TaskItem, error) {
	var tasks []*models.TaskItem
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}
