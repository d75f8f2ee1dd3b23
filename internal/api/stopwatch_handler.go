package api

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/game/stopwatch"
	"github.com/wfunc/exercise-hub/internal/middleware"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/session"
	"go.uber.org/zap"
)

// StopwatchHandler 秒表处理器
type StopwatchHandler struct {
	sessions *session.Manager
	now      func() time.Time
	logger   *zap.Logger
}

// NewStopwatchHandler 创建秒表处理器
func NewStopwatchHandler(sessions *session.Manager, logger *zap.Logger) *StopwatchHandler {
	return &StopwatchHandler{
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

// StopwatchActionRequest 秒表动作请求
type StopwatchActionRequest struct {
	Action string `json:"action" form:"action"`
}

// StopwatchResponse 秒表快照响应
type StopwatchResponse struct {
	Running   bool    `json:"running"`
	ElapsedMs int64   `json:"elapsed_ms"`
	LapsMs    []int64 `json:"laps_ms"`
}

func toStopwatchResponse(state *stopwatch.State, now time.Time) *StopwatchResponse {
	laps := make([]int64, 0, len(state.Laps))
	for _, lap := range state.Laps {
		laps = append(laps, lap.Milliseconds())
	}
	return &StopwatchResponse{
		Running:   state.Running,
		ElapsedMs: state.ElapsedAt(now).Milliseconds(),
		LapsMs:    laps,
	}
}

// loadState 加载当前会话的秒表，不存在时返回归零秒表
func (h *StopwatchHandler) loadState(ctx context.Context, sessionID string) (*stopwatch.State, error) {
	var state stopwatch.State
	err := h.sessions.Load(ctx, sessionID, models.StateKeyStopwatch, &state)
	if err == nil {
		if state.Laps == nil {
			state.Laps = []time.Duration{}
		}
		return &state, nil
	}
	if errors.Is(err, session.ErrStateNotFound) {
		return stopwatch.NewState(), nil
	}
	return nil, apperrors.Wrap(err, apperrors.ErrGameStateDecode)
}

// Show 秒表快照
// @Summary 秒表快照
// @Description 返回当前会话秒表的推导用时、运行状态和圈次
// @Tags Stopwatch
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stopwatch [get]
func (h *StopwatchHandler) Show(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrSessionMissing))
		return
	}

	state, err := h.loadState(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("加载秒表状态失败", zap.Error(err))
		respondError(c, err)
		return
	}

	respondOK(c, toStopwatchResponse(state, h.now()))
}

// Apply 驱动秒表
// @Summary 驱动秒表
// @Description 支持start/pause/lap/reset四种动作
// @Tags Stopwatch
// @Accept json
// @Produce json
// @Param request body StopwatchActionRequest true "秒表动作请求"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/stopwatch/action [post]
func (h *StopwatchHandler) Apply(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrSessionMissing))
		return
	}

	var req StopwatchActionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	state, err := h.loadState(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("加载秒表状态失败", zap.Error(err))
		respondError(c, err)
		return
	}

	now := h.now()
	if !state.Apply(req.Action, now) {
		respondError(c, apperrors.New(apperrors.ErrInvalidAction).WithDetails("不支持的动作: "+req.Action))
		return
	}

	if err := h.sessions.Save(c.Request.Context(), sessionID, models.StateKeyStopwatch, state); err != nil {
		h.logger.Error("保存秒表状态失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, toStopwatchResponse(state, now))
}
