package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/repository"
	"go.uber.org/zap"
)

// RecipeHandler 菜谱平台处理器
type RecipeHandler struct {
	repo   repository.RecipeRepository
	logger *zap.Logger
}

// NewRecipeHandler 创建菜谱平台处理器
func NewRecipeHandler(repo repository.RecipeRepository, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		repo:   repo,
		logger: logger,
	}
}

// CreateRecipeRequest 新增菜谱请求
type CreateRecipeRequest struct {
	Title        string `json:"title" form:"title"`
	Category     string `json:"category" form:"category"`
	Ingredients  string `json:"ingredients" form:"ingredients"`
	Instructions string `json:"instructions" form:"instructions"`
}

// List 菜谱列表
// @Summary 菜谱列表
// @Description 按标题升序返回，search参数对标题/分类/食材做不区分大小写过滤
// @Tags Recipes
// @Produce json
// @Param search query string false "搜索关键词"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.repo.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.logger.Error("查询菜谱列表失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}
	respondOK(c, recipes)
}

// Create 新增菜谱
// @Summary 新增菜谱
// @Description 标题和食材为必填项
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "新增菜谱请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("菜谱标题不能为空"))
		return
	}
	if strings.TrimSpace(req.Ingredients) == "" {
		respondError(c, apperrors.New(apperrors.ErrRequiredField).WithDetails("食材清单不能为空"))
		return
	}

	recipe := &models.Recipe{
		Title:        req.Title,
		Category:     req.Category,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}
	if err := h.repo.Create(c.Request.Context(), recipe); err != nil {
		h.logger.Error("新增菜谱失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, recipe)
}

// Delete 删除菜谱
// @Summary 删除菜谱
// @Description ID不存在时静默跳过
// @Tags Recipes
// @Produce json
// @Param id path string true "菜谱ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("删除菜谱失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}
	respondOK(c, nil)
}
