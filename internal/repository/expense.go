package repository

import (
	"context"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// ExpenseRepository 支出仓储接口
type ExpenseRepository interface {
	BaseRepository
	Create(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Expense, error)
}

// expenseRepo 支出仓储实现
type expenseRepo struct {
	*BaseRepo
}

// NewExpenseRepository 创建支出仓储
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 新增支出
func (r *expenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// Delete 按ID删除支出（ID不存在时静默跳过）
func (r *expenseRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id).Error
}

// List 按日期倒序列出所有支出
func (r *expenseRepo) List(ctx context.Context) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&expenses).Error
	return expenses, err
}
