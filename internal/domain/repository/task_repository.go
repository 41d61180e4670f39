package repository

import (
	"context"
	"errors"

	"taskward/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task matches the given id and owner.
// A task owned by someone else is indistinguishable from a missing one.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Every query is scoped by the owner's id; that scoping is the sole
// authorization mechanism for tasks.
type TaskRepository interface {
	// Create persists a new task. A (owner, title) collision is surfaced
	// as a domain conflict error via the storage unique constraint.
	Create(ctx context.Context, task *entity.Task) error

	// FindByIDAndOwner retrieves a single task owned by ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error)

	// ListByOwner returns up to limit tasks owned by ownerID starting at
	// offset, in insertion order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Task, error)

	// CountByOwner returns the total number of tasks owned by ownerID.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Update saves the given task. The row is matched on (id, owner).
	Update(ctx context.Context, task *entity.Task) error

	// DeleteByIDAndOwner removes a task owned by ownerID.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
