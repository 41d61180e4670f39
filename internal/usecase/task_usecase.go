package usecase

import (
	"context"
	"time"

	"taskward/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the fields accepted when creating a task.
// Status defaults to todo when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      entity.TaskStatus
	DueDate     *time.Time
}

// UpdateTaskInput carries partial update fields. Nil pointers mean
// "leave untouched", never "reset".
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
	DueDate     *time.Time
}

// HasChanges reports whether at least one field was supplied.
func (in *UpdateTaskInput) HasChanges() bool {
	return in.Title != nil || in.Description != nil || in.Status != nil || in.DueDate != nil
}

// ListTasksInput selects a 1-indexed page of an owner's tasks.
type ListTasksInput struct {
	Page  int
	Limit int
}

// ListTasksOutput returns one page of tasks plus the owner's total count,
// so clients can compute the page count themselves.
type ListTasksOutput struct {
	Tasks      []*entity.Task
	TotalTasks int64
}

// TaskUsecase defines owner-scoped task operations. Every method takes the
// authenticated owner's id and can never observe another owner's tasks.
type TaskUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	List(ctx context.Context, ownerID uuid.UUID, input *ListTasksInput) (*ListTasksOutput, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
