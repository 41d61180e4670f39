package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"taskward/internal/delivery/http/middleware"
	"taskward/internal/delivery/http/response"
	"taskward/internal/domain/entity"
	domainerrors "taskward/internal/domain/errors"
	"taskward/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dueDateLayout = "2006-01-02"

// createTaskRequest is the wire shape of the task creation endpoint.
type createTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate     string `json:"dueDate" validate:"omitempty,datetime=2006-01-02,notpast"`
}

// updateTaskRequest carries partial update fields. Absent fields stay nil so
// the usecase can tell "not sent" from "sent empty".
type updateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02,notpast"`
}

// TaskHandler holds dependencies for the task CRUD handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, logger: logger}
}

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("invalid task payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	task, err := h.uc.Create(c.Request().Context(), ownerID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
		DueDate:     dueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Task(c, http.StatusCreated, "Task created successfully", task)
}

// List handles the paginated task listing request.
func (h *TaskHandler) List(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	input := &usecase.ListTasksInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}

	output, err := h.uc.List(c.Request().Context(), ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.TaskList(c, output.Tasks, output.TotalTasks)
}

// Update handles the partial task update request.
func (h *TaskHandler) Update(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDFromPath(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.NewValidationError("invalid task payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return err
		}
		input.DueDate = dueDate
	}

	task, err := h.uc.Update(c.Request().Context(), taskID, ownerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Task(c, http.StatusOK, "Task updated successfully", task)
}

// Delete handles the task deletion request.
func (h *TaskHandler) Delete(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return err
	}

	taskID, err := taskIDFromPath(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), taskID, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Task deleted successfully")
}

// ownerIDFromContext reads the authenticated user set by the auth middleware.
func ownerIDFromContext(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("missing authenticated user")
	}

	return ownerID, nil
}

// taskIDFromPath parses the :id path parameter.
func taskIDFromPath(c echo.Context) (uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("task id must be a valid UUID")
	}

	return taskID, nil
}

// parseDueDate converts the wire date into a domain timestamp. The validator
// has already checked the format, so a parse failure here is a server fault.
func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	dueDate, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse due date")
	}

	return &dueDate, nil
}

// queryInt parses a numeric query parameter, returning 0 when absent or
// malformed so the usecase applies its defaults.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
