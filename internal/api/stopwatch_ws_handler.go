package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/wfunc/exercise-hub/internal/middleware"
	"go.uber.org/zap"
)

// StopwatchWSHandler 秒表实时推送处理器
type StopwatchWSHandler struct {
	stopwatch *StopwatchHandler
	upgrader  websocket.Upgrader
	interval  time.Duration
	logger    *zap.Logger
}

// NewStopwatchWSHandler 创建秒表推送处理器
func NewStopwatchWSHandler(stopwatch *StopwatchHandler, logger *zap.Logger) *StopwatchWSHandler {
	return &StopwatchWSHandler{
		stopwatch: stopwatch,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// 在生产环境中应该检查Origin
				return true
			},
		},
		interval: time.Second,
		logger:   logger,
	}
}

// Stream 建立WebSocket连接，按固定间隔推送秒表快照
func (h *StopwatchWSHandler) Stream(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少会话"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket升级失败",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Info("秒表推送连接建立", zap.String("session_id", sessionID))

	// 读协程只负责发现客户端断开
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			h.logger.Info("秒表推送连接关闭", zap.String("session_id", sessionID))
			return
		case <-ticker.C:
			state, err := h.stopwatch.loadState(c.Request.Context(), sessionID)
			if err != nil {
				h.logger.Error("加载秒表状态失败", zap.Error(err))
				return
			}

			snapshot := toStopwatchResponse(state, h.stopwatch.now())
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		}
	}
}
