package models

import (
	"time"
)

// SessionState 会话状态模型（按会话ID+状态键存储JSON序列化的小游戏状态）
type SessionState struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"size:64;not null;index;uniqueIndex:idx_session_key" json:"session_id"`
	StateKey  string    `gorm:"size:64;not null;uniqueIndex:idx_session_key" json:"state_key"`
	Data      string    `gorm:"type:text" json:"data"` // JSON格式的状态数据
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (SessionState) TableName() string {
	return "session_states"
}

// 会话状态键
const (
	StateKeyMemoryGame = "memory-game"
	StateKeyStopwatch  = "stopwatch-state"
)
