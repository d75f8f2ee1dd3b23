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

// ExpenseHandler 记账本处理器
type ExpenseHandler struct {
	repo   repository.ExpenseRepository
	logger *zap.Logger
}

// NewExpenseHandler 创建记账本处理器
func NewExpenseHandler(repo repository.ExpenseRepository, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateExpenseRequest 新增支出请求
type CreateExpenseRequest struct {
	Description string  `json:"description" form:"description"`
	Category    string  `json:"category" form:"category"`
	Amount      float64 `json:"amount" form:"amount"`
	Date        string  `json:"date" form:"date"`
}

// List 支出列表
// @Summary 支出列表
// @Description 按日期降序返回所有支出
// @Tags Expenses
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("查询支出列表失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, expenses)
}

// Create 新增支出
// @Summary 新增支出
// @Description 描述必填，金额不能为负数，日期缺省为当天
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "新增支出请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if strings.TrimSpace(req.Description) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("支出描述不能为空"))
		return
	}
	if req.Amount < 0 {
		respondError(c, apperrors.New(apperrors.ErrFieldRange).WithDetails("金额不能为负数"))
		return
	}

	category := req.Category
	if strings.TrimSpace(category) == "" {
		category = "General"
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

	expense := &models.Expense{
		Description: req.Description,
		Category:    category,
		Amount:      req.Amount,
		Date:        date,
	}
	if err := h.repo.Create(c.Request.Context(), expense); err != nil {
		h.logger.Error("新增支出失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, expense)
}

// Delete 删除支出
// @Summary 删除支出
// @Description ID不存在时静默跳过
// @Tags Expenses
// @Produce json
// @Param id path string true "支出ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("删除支出失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}
	respondOK(c, nil)
}
