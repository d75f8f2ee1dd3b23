package database

import (
	"github.com/wfunc/exercise-hub/internal/logger"
	"github.com/wfunc/exercise-hub/internal/models"
)

// AutoMigrate 自动迁移所有模型
func AutoMigrate() error {
	logger.Info("开始数据库迁移...")

	err := DB.AutoMigrate(
		// 共享集合
		&models.TaskItem{},
		&models.Expense{},
		&models.Booking{},
		&models.Note{},
		&models.CalendarEvent{},
		&models.Recipe{},
		&models.SurveyOption{},

		// 会话状态
		&models.SessionState{},
	)
	if err != nil {
		return err
	}

	logger.Info("数据库迁移完成")
	return nil
}
