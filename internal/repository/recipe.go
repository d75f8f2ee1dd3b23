package repository

import (
	"context"
	"strings"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository 菜谱仓储接口
type RecipeRepository interface {
	BaseRepository
	Create(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) ([]*models.Recipe, error)
}

// recipeRepo 菜谱仓储实现
type recipeRepo struct {
	*BaseRepo
}

// NewRecipeRepository 创建菜谱仓储
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 新增菜谱
func (r *recipeRepo) Create(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// Delete 按ID删除菜谱（ID不存在时静默跳过）
func (r *recipeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// List 按标题升序列出菜谱，search非空时对标题/分类/食材做不区分大小写的子串过滤
func (r *recipeRepo) List(ctx context.Context, search string) ([]*models.Recipe, error) {
	query := r.db.WithContext(ctx).Model(&models.Recipe{})

	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(category) LIKE ? OR LOWER(ingredients) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var recipes []*models.Recipe
	err := query.Order("title ASC").Find(&recipes).Error
	return recipes, err
}
