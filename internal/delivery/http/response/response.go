// Package response defines the JSON bodies returned by the HTTP API.
package response

import (
	"net/http"
	"time"

	"taskward/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const dueDateLayout = "2006-01-02"

// TaskView is the wire representation of a task.
type TaskView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	CreatedBy   string  `json:"createdBy"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// NewTaskView maps a domain task to its wire representation.
func NewTaskView(task *entity.Task) TaskView {
	view := TaskView{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		CreatedBy:   task.OwnerID.String(),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
	if task.DueDate != nil {
		due := task.DueDate.Format(dueDateLayout)
		view.DueDate = &due
	}

	return view
}

// NewTaskViews maps a slice of domain tasks.
func NewTaskViews(tasks []*entity.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, NewTaskView(task))
	}

	return views
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// TaskResponse is returned when a single task is created or updated.
type TaskResponse struct {
	Message string   `json:"message"`
	Task    TaskView `json:"task"`
}

// TaskListResponse is returned by the task listing endpoint.
type TaskListResponse struct {
	Tasks      []TaskView `json:"tasks"`
	TotalTasks int64      `json:"totalTasks"`
}

// MessageResponse carries a bare message, used for deletes and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an error message plus detail for server faults.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Token writes a token response.
func Token(c echo.Context, statusCode int, message string, token string) error {
	return c.JSON(statusCode, TokenResponse{Message: message, Token: token})
}

// Task writes a single-task response.
func Task(c echo.Context, statusCode int, message string, task *entity.Task) error {
	return c.JSON(statusCode, TaskResponse{Message: message, Task: NewTaskView(task)})
}

// TaskList writes a paginated task listing.
func TaskList(c echo.Context, tasks []*entity.Task, total int64) error {
	return c.JSON(http.StatusOK, TaskListResponse{Tasks: NewTaskViews(tasks), TotalTasks: total})
}

// Message writes a bare message body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes an error body. Detail is only included for server faults.
func Error(c echo.Context, statusCode int, message string, detail string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	body := ErrorResponse{Message: message}
	if statusCode >= http.StatusInternalServerError {
		body.Error = detail
	}

	return c.JSON(statusCode, body)
}
