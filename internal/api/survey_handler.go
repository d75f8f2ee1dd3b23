package api

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/repository"
	"go.uber.org/zap"
)

// SurveyHandler 投票平台处理器
type SurveyHandler struct {
	repo     repository.SurveyRepository
	question string
	logger   *zap.Logger
}

// NewSurveyHandler 创建投票平台处理器
func NewSurveyHandler(repo repository.SurveyRepository, question string, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		repo:     repo,
		question: question,
		logger:   logger,
	}
}

// VoteRequest 投票请求
type VoteRequest struct {
	OptionID string `json:"option_id" form:"option_id"`
}

// SurveyResponse 投票结果响应
type SurveyResponse struct {
	Question string      `json:"question"`
	Options  interface{} `json:"options"`
}

// Show 投票现状
// @Summary 投票现状
// @Description 返回问题和所有选项的当前票数
// @Tags Survey
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/survey [get]
func (h *SurveyHandler) Show(c *gin.Context) {
	options, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("查询投票选项失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}

	respondOK(c, &SurveyResponse{
		Question: h.question,
		Options:  options,
	})
}

// Vote 投票
// @Summary 投票
// @Description 给指定选项计票加一，未知ID不改变任何计票
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body VoteRequest true "投票请求"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/survey/vote [post]
func (h *SurveyHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	if err := h.repo.Vote(c.Request.Context(), req.OptionID); err != nil {
		h.logger.Error("投票失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}

	options, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseQuery))
		return
	}

	respondOK(c, &SurveyResponse{
		Question: h.question,
		Options:  options,
	})
}
