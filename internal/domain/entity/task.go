package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item. Every task belongs to exactly one owner;
// the title is unique per owner, not globally.
type Task struct {
	ID          uuid.UUID
	Title       string     // 3-100 characters, unique within the owner's tasks.
	Description string     // Optional, up to 500 characters.
	Status      TaskStatus // Always one of the TaskStatus constants.
	DueDate     *time.Time // Optional, date-only semantics.
	OwnerID     uuid.UUID  // Set at creation, immutable afterwards.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
