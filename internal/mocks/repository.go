// Package mocks provides hand-written testify mocks for the domain
// interfaces used in unit tests.
package mocks

import (
	"context"
	"testing"

	"taskward/internal/domain/entity"
	"taskward/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new mock and registers expectation checks.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	var user *entity.User
	if args.Get(0) != nil {
		user = args.Get(0).(*entity.User)
	}

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	var user *entity.User
	if args.Get(0) != nil {
		user = args.Get(0).(*entity.User)
	}

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

// NewMockTaskRepository creates a new mock and registers expectation checks.
func NewMockTaskRepository(t *testing.T) *MockTaskRepository {
	m := &MockTaskRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *MockTaskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error) {
	args := m.Called(ctx, id, ownerID)

	var task *entity.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*entity.Task)
	}

	return task, args.Error(1)
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.Task, error) {
	args := m.Called(ctx, ownerID, offset, limit)

	var tasks []*entity.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]*entity.Task)
	}

	return tasks, args.Error(1)
}

func (m *MockTaskRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *MockTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the callback against the configured factory so tests exercise
// the real transactional code path.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

// NewMockTransactionManager creates a new mock bound to the given factory.
func NewMockTransactionManager(t *testing.T, factory repository.RepositoryFactory) *MockTransactionManager {
	m := &MockTransactionManager{Factory: factory}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}

	return fn(m.Factory)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	Users *MockUserRepository
	Tasks *MockTaskRepository
}

// NewMockRepositoryFactory bundles fresh repository mocks.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	return &MockRepositoryFactory{
		Users: NewMockUserRepository(t),
		Tasks: NewMockTaskRepository(t),
	}
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *MockRepositoryFactory) TaskRepo() repository.TaskRepository {
	return f.Tasks
}
