package api

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/game/memory"
	"github.com/wfunc/exercise-hub/internal/middleware"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/session"
	"go.uber.org/zap"
)

// MemoryHandler 记忆翻牌处理器
type MemoryHandler struct {
	sessions *session.Manager
	symbols  []string
	rngMu    sync.Mutex
	rng      *rand.Rand
	logger   *zap.Logger
}

// NewMemoryHandler 创建记忆翻牌处理器
func NewMemoryHandler(sessions *session.Manager, symbols []string, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{
		sessions: sessions,
		symbols:  symbols,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   logger,
	}
}

// PickRequest 翻牌请求
type PickRequest struct {
	First  int `json:"first" form:"first"`
	Second int `json:"second" form:"second"`
}

// MemoryGameResponse 记忆翻牌响应
type MemoryGameResponse struct {
	Cards      []memory.Card `json:"cards"`
	Messages   []string      `json:"messages"`
	Moves      int           `json:"moves"`
	IsComplete bool          `json:"is_complete"`
}

func toMemoryResponse(state *memory.State) *MemoryGameResponse {
	return &MemoryGameResponse{
		Cards:      state.Cards,
		Messages:   state.Messages,
		Moves:      state.Moves,
		IsComplete: state.IsComplete(),
	}
}

// loadOrDeal 加载当前会话的牌局，不存在时发新牌并落库
func (h *MemoryHandler) loadOrDeal(ctx context.Context, sessionID string) (*memory.State, error) {
	var state memory.State
	err := h.sessions.Load(ctx, sessionID, models.StateKeyMemoryGame, &state)
	if err == nil {
		return &state, nil
	}
	if !errors.Is(err, session.ErrStateNotFound) {
		return nil, apperrors.Wrap(err, apperrors.ErrGameStateDecode)
	}

	// rand.Rand不是并发安全的，发牌时加锁
	h.rngMu.Lock()
	fresh := memory.NewGame(h.symbols, h.rng)
	h.rngMu.Unlock()
	if err := h.sessions.Save(ctx, sessionID, models.StateKeyMemoryGame, fresh); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
	}
	return fresh, nil
}

// Show 当前牌局
// @Summary 当前牌局
// @Description 返回当前会话的牌局，首次访问自动发牌
// @Tags MemoryGame
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/memory [get]
func (h *MemoryHandler) Show(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrSessionMissing))
		return
	}

	state, err := h.loadOrDeal(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("加载牌局失败", zap.Error(err))
		respondError(c, err)
		return
	}

	respondOK(c, toMemoryResponse(state))
}

// Pick 翻开两张卡片
// @Summary 翻开两张卡片
// @Description 无效选择只追加提示不计步数，配对成功的卡片保持翻开
// @Tags MemoryGame
// @Accept json
// @Produce json
// @Param request body PickRequest true "翻牌请求"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/memory/pick [post]
func (h *MemoryHandler) Pick(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrSessionMissing))
		return
	}

	var req PickRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrInvalidParam).WithDetails(err.Error()))
		return
	}

	state, err := h.loadOrDeal(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("加载牌局失败", zap.Error(err))
		respondError(c, err)
		return
	}

	state.Pick(req.First, req.Second)

	if err := h.sessions.Save(c.Request.Context(), sessionID, models.StateKeyMemoryGame, state); err != nil {
		h.logger.Error("保存牌局失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseInsert))
		return
	}

	respondOK(c, toMemoryResponse(state))
}

// Reset 重新开局
// @Summary 重新开局
// @Description 丢弃当前牌局，下次访问重新发牌
// @Tags MemoryGame
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/memory/reset [post]
func (h *MemoryHandler) Reset(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrSessionMissing))
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), sessionID, models.StateKeyMemoryGame); err != nil {
		h.logger.Error("重置牌局失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrDatabaseDelete))
		return
	}

	respondOK(c, nil)
}
