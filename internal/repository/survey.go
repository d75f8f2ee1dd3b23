package repository

import (
	"context"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// SurveyRepository 投票仓储接口
type SurveyRepository interface {
	BaseRepository
	Seed(ctx context.Context, options []string) error
	Vote(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.SurveyOption, error)
}

// surveyRepo 投票仓储实现
type surveyRepo struct {
	*BaseRepo
}

// NewSurveyRepository 创建投票仓储
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Seed 播种固定选项集合（按文本去重，可重复调用）
func (r *surveyRepo) Seed(ctx context.Context, options []string) error {
	for i, text := range options {
		option := &models.SurveyOption{
			Text:      text,
			SortOrder: i,
		}
		err := r.db.WithContext(ctx).
			Where("text = ?", text).
			FirstOrCreate(option).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Vote 给指定选项计票加一（ID不存在时静默跳过）
func (r *surveyRepo) Vote(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.SurveyOption{}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + 1")).Error
}

// List 按播种顺序列出所有选项
func (r *surveyRepo) List(ctx context.Context) ([]*models.SurveyOption, error) {
	var options []*models.SurveyOption
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&options).Error
	return options, err
}
