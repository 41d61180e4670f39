package mocks

import (
	"context"
	"testing"

	"taskward/internal/domain/entity"
	"taskward/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a new mock and registers expectation checks.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if args.Get(0) != nil {
		output = args.Get(0).(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if args.Get(0) != nil {
		output = args.Get(0).(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}

// MockTaskUsecase is a mock implementation of usecase.TaskUsecase.
type MockTaskUsecase struct {
	mock.Mock
}

// NewMockTaskUsecase creates a new mock and registers expectation checks.
func NewMockTaskUsecase(t *testing.T) *MockTaskUsecase {
	m := &MockTaskUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, ownerID, input)

	var task *entity.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*entity.Task)
	}

	return task, args.Error(1)
}

func (m *MockTaskUsecase) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListTasksInput) (*usecase.ListTasksOutput, error) {
	args := m.Called(ctx, ownerID, input)

	var output *usecase.ListTasksOutput
	if args.Get(0) != nil {
		output = args.Get(0).(*usecase.ListTasksOutput)
	}

	return output, args.Error(1)
}

func (m *MockTaskUsecase) Update(ctx context.Context, id, ownerID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	args := m.Called(ctx, id, ownerID, input)

	var task *entity.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*entity.Task)
	}

	return task, args.Error(1)
}

func (m *MockTaskUsecase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}
