package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/exercise-hub/internal/models"
)

func TestTaskRepository_CreateAndList(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	first := &models.TaskItem{Title: "买菜", Category: "生活"}
	second := &models.TaskItem{Title: "写周报", Category: "工作"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// 创建时生成UUID
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	// 按录入顺序返回
	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "买菜", tasks[0].Title)
	assert.Equal(t, "写周报", tasks[1].Title)
}

func TestTaskRepository_AddThenDeleteRestoresCollection(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	keep := &models.TaskItem{Title: "保留"}
	require.NoError(t, repo.Create(ctx, keep))

	extra := &models.TaskItem{Title: "临时"}
	require.NoError(t, repo.Create(ctx, extra))
	require.NoError(t, repo.Delete(ctx, extra.ID))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

func TestTaskRepository_DeleteUnknownIDIsNoop(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.TaskItem{Title: "任务"}))
	require.NoError(t, repo.Delete(ctx, "no-such-id"))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskRepository_ToggleDone(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := &models.TaskItem{Title: "任务"}
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.ToggleDone(ctx, task.ID))
	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, tasks[0].Done)

	require.NoError(t, repo.ToggleDone(ctx, task.ID))
	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	assert.False(t, tasks[0].Done)

	// 未知ID静默跳过
	require.NoError(t, repo.ToggleDone(ctx, "no-such-id"))
}
