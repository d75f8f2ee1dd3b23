package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/repository"
	"go.uber.org/zap"
)

// NoteHandler 笔记管理处理器
type NoteHandler struct {
	repo   repository.NoteRepository
	logger *zap.Logger
}

// NewNoteHandler 创建笔记管理处理器
func NewNoteHandler(repo repository.NoteRepository, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateNoteRequest 新增笔记请求
type CreateNoteRequest struct {
	Title    string `json:"title" form:"title"`
	Category string `json:"category" form:"category"`
	Content  string `json:"content" form:"content"`
}

// List 笔记列表
// @Summary 笔记列表
// @Description 按标题升序返回，search参数对标题/分类/正文做不区分大小写过滤
// @Tags Notes
// @Produce json
// @Param search query string false "搜索关键词"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.repo.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.logger.Error("查询笔记列表失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, notes)
}

// Create 新增笔记
// @Summary 新增笔记
// @Description 标题为必填项
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body CreateNoteRequest true "新增笔记请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("笔记标题不能为空"))
		return
	}

	note := &models.Note{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	}
	if err := h.repo.Create(c.Request.Context(), note); err != nil {
		h.logger.Error("新增笔记失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, note)
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description ID不存在时静默跳过
// @Tags Notes
// @Produce json
// @Param id path string true "笔记ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("删除笔记失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}
	respondOK(c, nil)
}
