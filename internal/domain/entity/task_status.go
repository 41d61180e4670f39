// Package entity contains the core business objects of the project.
package entity

// TaskStatus represents the progress state of a task.
type TaskStatus string

const (
	// StatusTodo indicates a task that has not been started. New tasks default to it.
	StatusTodo TaskStatus = "todo"
	// StatusInProgress indicates a task that is being worked on.
	StatusInProgress TaskStatus = "in_progress"
	// StatusDone indicates a completed task.
	StatusDone TaskStatus = "done"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}
