package impl

import (
	"context"
	"errors"
	"testing"

	"taskward/internal/domain/entity"
	domainerrors "taskward/internal/domain/errors"
	"taskward/internal/domain/repository"
	"taskward/internal/mocks"
	"taskward/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(userRepo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher, tokenSvc *mocks.MockTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and returns a token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokenSvc := mocks.NewMockTokenService(t)
		svc := newAuthService(userRepo, hasher, tokenSvc)

		newID := uuid.New()
		hasher.On("Hash", "secret123").Return("hashed-secret", nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Alice" && u.Email == "alice@example.com" && u.PasswordHash == "hashed-secret"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = newID
		}).Return(nil)
		tokenSvc.On("Generate", mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == newID
		})).Return("signed-token", nil)

		output, err := svc.Register(ctx, &usecase.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.Token)
		assert.Equal(t, newID, output.User.ID)
	})

	t.Run("surfaces an email conflict from the repository", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokenSvc := mocks.NewMockTokenService(t)
		svc := newAuthService(userRepo, hasher, tokenSvc)

		hasher.On("Hash", "secret123").Return("hashed-secret", nil)
		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists"))

		output, err := svc.Register(ctx, &usecase.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Nil(t, output)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.HTTPCode())
	})

	t.Run("fails when hashing fails", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokenSvc := mocks.NewMockTokenService(t)
		svc := newAuthService(userRepo, hasher, tokenSvc)

		hasher.On("Hash", "secret123").Return("", errors.New("hash failure"))

		output, err := svc.Register(ctx, &usecase.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Nil(t, output)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed-secret",
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokenSvc := mocks.NewMockTokenService(t)
		svc := newAuthService(userRepo, hasher, tokenSvc)

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)
		hasher.On("Check", "secret123", "hashed-secret").Return(true)
		tokenSvc.On("Generate", storedUser).Return("signed-token", nil)

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.Token)
		assert.Equal(t, storedUser, output.User)
	})

	t.Run("reports not found for an unknown email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokenSvc := mocks.NewMockTokenService(t)
		svc := newAuthService(userRepo, hasher, tokenSvc)

		userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.HTTPCode())
	})

	t.Run("reports invalid password distinctly from unknown email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokenSvc := mocks.NewMockTokenService(t)
		svc := newAuthService(userRepo, hasher, tokenSvc)

		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(storedUser, nil)
		hasher.On("Check", "wrong-password", "hashed-secret").Return(false)

		output, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong-password"})
		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.HTTPCode())
	})
}
