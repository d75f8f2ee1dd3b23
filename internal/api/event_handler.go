package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/repository"
	"go.uber.org/zap"
)

// EventHandler 活动日历处理器
type EventHandler struct {
	repo   repository.EventRepository
	logger *zap.Logger
}

// NewEventHandler 创建活动日历处理器
func NewEventHandler(repo repository.EventRepository, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateEventRequest 新增活动请求
type CreateEventRequest struct {
	Title    string `json:"title" form:"title"`
	Date     string `json:"date" form:"date"`
	Location string `json:"location" form:"location"`
}

// List 活动列表
// @Summary 活动列表
// @Description 按日期升序返回所有活动
// @Tags Events
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("查询活动列表失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, events)
}

// Create 新增活动
// @Summary 新增活动
// @Description 标题为必填项，日期缺省为当天
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "新增活动请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("活动标题不能为空"))
		return
	}

	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(c, apperrors.New(apperrors.ErrFieldFormat).WithDetails("日期格式必须为YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	event := &models.CalendarEvent{
		Title:    req.Title,
		Date:     date,
		Location: req.Location,
	}
	if err := h.repo.Create(c.Request.Context(), event); err != nil {
		h.logger.Error("新增活动失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, event)
}

// Delete 删除活动
// @Summary 删除活动
// @Description ID不存在时静默跳过
// @Tags Events
// @Produce json
// @Param id path string true "活动ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("删除活动失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}
	respondOK(c, nil)
}
