package impl

import (
	"context"
	"testing"
	"time"

	"taskward/internal/domain/entity"
	domainerrors "taskward/internal/domain/errors"
	"taskward/internal/domain/repository"
	"taskward/internal/mocks"
	"taskward/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T, taskRepo *mocks.MockTaskRepository) (usecase.TaskUsecase, *mocks.MockTransactionManager, *mocks.MockRepositoryFactory) {
	factory := mocks.NewMockRepositoryFactory(t)
	txManager := mocks.NewMockTransactionManager(t, factory)
	svc := NewTaskService(TaskServiceParams{
		TxManager: txManager,
		TaskRepo:  taskRepo,
		Logger:    newDiscardLogger(),
	})

	return svc, txManager, factory
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("defaults the status to todo", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *entity.Task) bool {
			return task.Title == "Ship release" && task.Status == entity.StatusTodo && task.OwnerID == ownerID
		})).Return(nil)

		task, err := svc.Create(ctx, ownerID, &usecase.CreateTaskInput{Title: "Ship release"})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusTodo, task.Status)
	})

	t.Run("keeps an explicit status and due date", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		due := time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
		taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *entity.Task) bool {
			return task.Status == entity.StatusInProgress && task.DueDate != nil && task.DueDate.Equal(due)
		})).Return(nil)

		task, err := svc.Create(ctx, ownerID, &usecase.CreateTaskInput{
			Title:   "Ship release",
			Status:  entity.StatusInProgress,
			DueDate: &due,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, task.Status)
	})

	t.Run("surfaces a duplicate title conflict", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("Create", mock.Anything, mock.Anything).
			Return(domainerrors.ErrTaskTitleExists.WrapMessage("title already exists"))

		task, err := svc.Create(ctx, ownerID, &usecase.CreateTaskInput{Title: "Ship release"})
		require.Error(t, err)
		assert.Nil(t, task)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.HTTPCode())
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	tasks := []*entity.Task{
		{ID: uuid.New(), Title: "First", OwnerID: ownerID},
		{ID: uuid.New(), Title: "Second", OwnerID: ownerID},
	}

	t.Run("applies default pagination", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("ListByOwner", mock.Anything, ownerID, 0, 10).Return(tasks, nil)
		taskRepo.On("CountByOwner", mock.Anything, ownerID).Return(int64(2), nil)

		output, err := svc.List(ctx, ownerID, &usecase.ListTasksInput{})
		require.NoError(t, err)
		assert.Len(t, output.Tasks, 2)
		assert.Equal(t, int64(2), output.TotalTasks)
	})

	t.Run("translates page and limit into an offset", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("ListByOwner", mock.Anything, ownerID, 10, 5).Return([]*entity.Task{}, nil)
		taskRepo.On("CountByOwner", mock.Anything, ownerID).Return(int64(12), nil)

		output, err := svc.List(ctx, ownerID, &usecase.ListTasksInput{Page: 3, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, output.Tasks)
		assert.Equal(t, int64(12), output.TotalTasks)
	})

	t.Run("normalizes negative pagination values", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("ListByOwner", mock.Anything, ownerID, 0, 10).Return(tasks, nil)
		taskRepo.On("CountByOwner", mock.Anything, ownerID).Return(int64(2), nil)

		_, err := svc.List(ctx, ownerID, &usecase.ListTasksInput{Page: -2, Limit: -5})
		require.NoError(t, err)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("applies only the supplied fields", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, txManager, factory := newTaskService(t, taskRepo)

		stored := &entity.Task{
			ID:          taskID,
			Title:       "Old title",
			Description: "Keep me",
			Status:      entity.StatusTodo,
			OwnerID:     ownerID,
		}

		txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		factory.Tasks.On("FindByIDAndOwner", mock.Anything, taskID, ownerID).Return(stored, nil)
		factory.Tasks.On("Update", mock.Anything, mock.MatchedBy(func(task *entity.Task) bool {
			return task.Title == "New title" && task.Description == "Keep me" && task.Status == entity.StatusTodo
		})).Return(nil)

		newTitle := "New title"
		updated, err := svc.Update(ctx, taskID, ownerID, &usecase.UpdateTaskInput{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, "Keep me", updated.Description)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		updated, err := svc.Update(ctx, taskID, ownerID, &usecase.UpdateTaskInput{})
		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("reports not found when the owner has no such task", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, txManager, factory := newTaskService(t, taskRepo)

		txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		factory.Tasks.On("FindByIDAndOwner", mock.Anything, taskID, ownerID).Return(nil, repository.ErrTaskNotFound)

		newStatus := entity.StatusDone
		updated, err := svc.Update(ctx, taskID, ownerID, &usecase.UpdateTaskInput{Status: &newStatus})
		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("deletes the owner's task", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("DeleteByIDAndOwner", mock.Anything, taskID, ownerID).Return(nil)

		require.NoError(t, svc.Delete(ctx, taskID, ownerID))
	})

	t.Run("reports not found for a missing task", func(t *testing.T) {
		taskRepo := mocks.NewMockTaskRepository(t)
		svc, _, _ := newTaskService(t, taskRepo)

		taskRepo.On("DeleteByIDAndOwner", mock.Anything, taskID, ownerID).Return(repository.ErrTaskNotFound)

		err := svc.Delete(ctx, taskID, ownerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	})
}
