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

// BookingHandler 预约系统处理器
type BookingHandler struct {
	repo   repository.BookingRepository
	logger *zap.Logger
}

// NewBookingHandler 创建预约系统处理器
func NewBookingHandler(repo repository.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateBookingRequest 新增预约请求
type CreateBookingRequest struct {
	Client  string `json:"client" form:"client"`
	Service string `json:"service" form:"service"`
	Date    string `json:"date" form:"date"`
	Notes   string `json:"notes" form:"notes"`
}

// List 预约列表
// @Summary 预约列表
// @Description 按预约日期升序返回所有预约
// @Tags Bookings
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("查询预约列表失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, bookings)
}

// Create 新增预约
// @Summary 新增预约
// @Description 客户和服务项目必填，日期缺省为明天
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "新增预约请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if strings.TrimSpace(req.Client) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("客户姓名不能为空"))
		return
	}
	if strings.TrimSpace(req.Service) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("服务项目不能为空"))
		return
	}

	date := time.Now().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondError(c, apperrors.New(apperrors.ErrFieldFormat).WithDetails("日期格式必须为YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	booking := &models.Booking{
		Client:  req.Client,
		Service: req.Service,
		Date:    date,
		Notes:   req.Notes,
	}
	if err := h.repo.Create(c.Request.Context(), booking); err != nil {
		h.logger.Error("新增预约失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, booking)
}

// Cancel 取消预约
// @Summary 取消预约
// @Description ID不存在时静默跳过
// @Tags Bookings
// @Produce json
// @Param id path string true "预约ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.repo.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("取消预约失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}
	respondOK(c, nil)
}
