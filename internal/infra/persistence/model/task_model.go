package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. The composite unique index on
// (owner_id, title) enforces per-owner title uniqueness at the database,
// so concurrent creates cannot both slip past an application-level check.
type TaskModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_tasks_owner_title"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:todo"`
	DueDate     *time.Time `gorm:"type:date"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tasks_owner_title"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
