package api

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/tools"
	"go.uber.org/zap"
)

// ToolsHandler 小工具处理器（小费计算、密码生成）
type ToolsHandler struct {
	logger *zap.Logger
}

// NewToolsHandler 创建小工具处理器
func NewToolsHandler(logger *zap.Logger) *ToolsHandler {
	return &ToolsHandler{
		logger: logger,
	}
}

// PasswordResponse 密码生成响应
type PasswordResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// CalculateTip 小费计算
// @Summary 小费计算
// @Description 计算小费、含小费总额和人均金额，保留两位小数
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body tools.TipRequest true "小费计算请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tools/tip [post]
func (h *ToolsHandler) CalculateTip(c *gin.Context) {
	req := &tools.TipRequest{
		TipPercentage: 10,
		People:        1,
	}
	if err := c.ShouldBind(req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	result, err := tools.CalculateTip(req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, result)
}

// GeneratePassword 密码生成
// @Summary 密码生成
// @Description 按长度和字符类生成随机密码，小写字母始终包含
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body tools.PasswordRequest true "密码生成请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tools/password [post]
func (h *ToolsHandler) GeneratePassword(c *gin.Context) {
	req := tools.DefaultPasswordRequest()
	if err := c.ShouldBind(req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	password, err := tools.GeneratePassword(req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, &PasswordResponse{
		Password: password,
		Length:   len(password),
	})
}
