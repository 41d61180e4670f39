package postgres

import (
	"context"

	"taskward/internal/domain/entity"
	domainerrors "taskward/internal/domain/errors"
	"taskward/internal/domain/repository"
	"taskward/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
// Every query filters on owner_id so one owner can never reach another's rows.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task. The (owner_id, title) unique index turns a
// duplicate title into a domain conflict error, with no read-then-write race.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTaskTitleExists.WrapMessage("title already used by this owner")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt
	if task.Status == "" {
		task.Status = entity.TaskStatus(taskM.Status)
	}

	return nil
}

// FindByIDAndOwner retrieves a single task scoped to its owner.
func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id and owner")
	}

	return toTaskDomain(&taskM), nil
}

// ListByOwner returns a slice of the owner's tasks in insertion order.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, toTaskDomain(&taskModels[i]))
	}

	return tasks, nil
}

// CountByOwner returns the total number of tasks owned by ownerID.
func (repo *taskRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tasks by owner")
	}

	return count, nil
}

// Update saves the full task row, matched on (id, owner). A title that now
// collides with another of the owner's tasks trips the unique index; the
// updated row itself is excluded naturally because it keeps its id.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND owner_id = ?", task.ID, task.OwnerID).
		Updates(map[string]any{
			"title":       taskM.Title,
			"description": taskM.Description,
			"status":      taskM.Status,
			"due_date":    taskM.DueDate,
		})

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTaskTitleExists.WrapMessage("title already used by this owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// DeleteByIDAndOwner removes a task scoped to its owner. Zero affected rows
// means the task does not exist for that owner.
func (repo *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.TaskModel{})

	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		DueDate:     data.DueDate,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status.String(),
		DueDate:     data.DueDate,
		OwnerID:     data.OwnerID,
	}
}
