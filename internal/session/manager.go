package session

import (
	"context"
	"encoding/json"
	"fmt"
)

// Manager 会话状态管理器，负责按会话和状态键读写JSON状态
type Manager struct {
	persister StatePersister
}

// NewManager 创建会话状态管理器
func NewManager(persister StatePersister) *Manager {
	return &Manager{
		persister: persister,
	}
}

// Load 加载并反序列化指定会话的状态，状态不存在时返回 ErrStateNotFound
func (m *Manager) Load(ctx context.Context, sessionID, stateKey string, out interface{}) error {
	data, err := m.persister.Load(ctx, sessionID, stateKey)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("反序列化状态失败: %w", err)
	}

	return nil
}

// Save 序列化并保存指定会话的状态
func (m *Manager) Save(ctx context.Context, sessionID, stateKey string, state interface{}) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("序列化状态失败: %w", err)
	}

	return m.persister.Save(ctx, sessionID, stateKey, data)
}

// Delete 删除指定会话的状态
func (m *Manager) Delete(ctx context.Context, sessionID, stateKey string) error {
	return m.persister.Delete(ctx, sessionID, stateKey)
}
