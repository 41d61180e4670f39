package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskward/internal/delivery/context"
	"taskward/internal/domain/entity"
	domainerrors "taskward/internal/domain/errors"
	"taskward/internal/domain/repository"
	"taskward/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// taskService implements the TaskUsecase interface. Every repository call
// is scoped by the owner's id; that scoping is the whole authorization story.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new task for ownerID. A title the owner already uses is
// rejected by the (owner_id, title) unique index and surfaced as a conflict.
func (srv *taskService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	srv.log(ctx).Debug("Creating task", slog.Any("ownerID", ownerID), slog.String("title", input.Title))

	status := input.Status
	if status == "" {
		status = entity.StatusTodo
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Warn("Failed to create task", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID))

	return task, nil
}

// List returns the page-th slice (1-indexed) of up to limit tasks belonging
// to ownerID, plus the owner's total task count.
func (srv *taskService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListTasksInput) (*usecase.ListTasksOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	tasks, err := srv.taskRepo.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	total, err := srv.taskRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to count tasks", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count tasks")
	}

	return &usecase.ListTasksOutput{Tasks: tasks, TotalTasks: total}, nil
}

// Update applies a partial update to a task owned by ownerID. Absent fields
// are left untouched. The read and the write share one transaction so the
// saved row is the one that was loaded.
func (srv *taskService) Update(ctx context.Context, id, ownerID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	srv.log(ctx).Debug("Updating task", slog.Any("taskID", id), slog.Any("ownerID", ownerID))

	if !input.HasChanges() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "update requires at least one field")
	}

	var updated *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return errors.Wrap(domainerrors.ErrTaskNotFound, "task not found for update")
			}

			return errors.Wrap(err, "failed to load task for update")
		}

		applyTaskChanges(task, input)

		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.Wrap(err, "failed to save task update")
		}

		updated = task

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update task", slog.Any("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute task update transaction")
	}

	srv.log(ctx).Debug("Task updated", slog.Any("taskID", id))

	return updated, nil
}

// Delete removes a task owned by ownerID. An id that exists under another
// owner reports not found, never the other owner's data.
func (srv *taskService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting task", slog.Any("taskID", id), slog.Any("ownerID", ownerID))

	if err := srv.taskRepo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "task not found for delete")
		}

		srv.log(ctx).Error("Failed to delete task", slog.Any("taskID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}

func applyTaskChanges(task *entity.Task, input *usecase.UpdateTaskInput) {
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
}
