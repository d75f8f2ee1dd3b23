package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wfunc/exercise-hub/internal/models"
	"gorm.io/gorm"
)

// StatePersister 会话状态持久化接口
type StatePersister interface {
	Save(ctx context.Context, sessionID, stateKey string, data []byte) error
	Load(ctx context.Context, sessionID, stateKey string) ([]byte, error)
	Delete(ctx context.Context, sessionID, stateKey string) error
}

// ErrStateNotFound 状态不存在
var ErrStateNotFound = fmt.Errorf("会话状态不存在")

// MemoryStatePersister 内存状态持久化（用于测试）
type MemoryStatePersister struct {
	mu     sync.RWMutex
	states map[string][]byte
}

// NewMemoryStatePersister 创建内存持久化器
func NewMemoryStatePersister() *MemoryStatePersister {
	return &MemoryStatePersister{
		states: make(map[string][]byte),
	}
}

func memoryKey(sessionID, stateKey string) string {
	return sessionID + "/" + stateKey
}

// Save 保存状态
func (p *MemoryStatePersister) Save(ctx context.Context, sessionID, stateKey string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// 深拷贝数据
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	p.states[memoryKey(sessionID, stateKey)] = dataCopy
	return nil
}

// Load 加载状态
func (p *MemoryStatePersister) Load(ctx context.Context, sessionID, stateKey string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	data, exists := p.states[memoryKey(sessionID, stateKey)]
	if !exists {
		return nil, ErrStateNotFound
	}

	// 返回深拷贝
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return dataCopy, nil
}

// Delete 删除状态
func (p *MemoryStatePersister) Delete(ctx context.Context, sessionID, stateKey string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.states, memoryKey(sessionID, stateKey))
	return nil
}

// DatabaseStatePersister 数据库状态持久化
type DatabaseStatePersister struct {
	db *gorm.DB
}

// NewDatabaseStatePersister 创建数据库持久化器
func NewDatabaseStatePersister(db *gorm.DB) *DatabaseStatePersister {
	return &DatabaseStatePersister{
		db: db,
	}
}

// Save 保存状态到数据库
func (p *DatabaseStatePersister) Save(ctx context.Context, sessionID, stateKey string, data []byte) error {
	state := &models.SessionState{
		SessionID: sessionID,
		StateKey:  stateKey,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}

	// 使用 Upsert 操作（存在则更新，不存在则插入）
	result := p.db.WithContext(ctx).
		Where("session_id = ? AND state_key = ?", sessionID, stateKey).
		Assign(models.SessionState{
			Data:      state.Data,
			UpdatedAt: state.UpdatedAt,
		}).
		FirstOrCreate(&state)

	if result.Error != nil {
		return fmt.Errorf("保存状态失败: %w", result.Error)
	}

	return nil
}

// Load 从数据库加载状态
func (p *DatabaseStatePersister) Load(ctx context.Context, sessionID, stateKey string) ([]byte, error) {
	var state models.SessionState

	result := p.db.WithContext(ctx).
		Where("session_id = ? AND state_key = ?", sessionID, stateKey).
		First(&state)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("查询状态失败: %w", result.Error)
	}

	return []byte(state.Data), nil
}

// Delete 从数据库删除状态（不存在时静默跳过）
func (p *DatabaseStatePersister) Delete(ctx context.Context, sessionID, stateKey string) error {
	result := p.db.WithContext(ctx).
		Where("session_id = ? AND state_key = ?", sessionID, stateKey).
		Delete(&models.SessionState{})

	if result.Error != nil {
		return fmt.Errorf("删除状态失败: %w", result.Error)
	}

	return nil
}
