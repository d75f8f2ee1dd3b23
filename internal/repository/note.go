package repository

import (
	"context"
	"strings"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	BaseRepository
	Create(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) ([]*models.Note, error)
}

// noteRepo 笔记仓储实现
type noteRepo struct {
	*BaseRepo
}

// NewNoteRepository 创建笔记仓储
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 新增笔记
func (r *noteRepo) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Delete 按ID删除笔记（ID不存在时静默跳过）
func (r *noteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id).Error
}

// List 按标题升序列出笔记，search非空时对标题/分类/正文做不区分大小写的子串过滤
func (r *noteRepo) List(ctx context.Context, search string) ([]*models.Note, error) {
	query := r.db.WithContext(ctx).Model(&models.Note{})

	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(category) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var notes []*models.Note
	err := query.Order("title ASC").Find(&notes).Error
	return notes, err
}
