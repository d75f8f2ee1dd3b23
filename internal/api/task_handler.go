package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/repository"
	"go.uber.org/zap"
)

// TaskHandler 任务清单处理器
type TaskHandler struct {
	repo   repository.TaskRepository
	logger *zap.Logger
}

// NewTaskHandler 创建任务清单处理器
func NewTaskHandler(repo repository.TaskRepository, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateTaskRequest 新增任务请求
type CreateTaskRequest struct {
	Title    string `json:"title" form:"title"`
	Category string `json:"category" form:"category"`
}

// List 任务列表
// @Summary 任务列表
// @Description 按录入顺序返回所有任务
// @Tags Tasks
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("查询任务列表失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, tasks)
}

// Create 新增任务
// @Summary 新增任务
// @Description 标题为必填项，空白标题被拒绝
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "新增任务请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("任务标题不能为空"))
		return
	}

	task := &models.TaskItem{
		Title:    req.Title,
		Category: req.Category,
	}
	if err := h.repo.Create(c.Request.Context(), task); err != nil {
		h.logger.Error("新增任务失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, task)
}

// Toggle 切换任务完成状态
// @Summary 切换任务完成状态
// @Description ID不存在时不做任何修改
// @Tags Tasks
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/tasks/{id}/toggle [post]
func (h *TaskHandler) Toggle(c *gin.Context) {
	if err := h.repo.ToggleDone(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("切换任务状态失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, nil)
}

// Delete 删除任务
// @Summary 删除任务
// @Description ID不存在时静默跳过
// @Tags Tasks
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("删除任务失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}
	respondOK(c, nil)
}
