// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskward/internal/delivery/context"
	"taskward/internal/domain/entity"
	domainerrors "taskward/internal/domain/errors"
	"taskward/internal/domain/repository"
	"taskward/internal/domain/service"
	"taskward/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password and returns a
// freshly issued token. Email uniqueness comes from the database unique
// index; the repository surfaces a collision as a conflict error, so no
// read-before-write check is needed here.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Generate(newUser)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password are distinct failures on purpose: the API reports 404 for
// the former and 401 for the latter, preserved for client compatibility.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, user not found", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt check is CPU-bound; nothing else holds a DB connection here.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login failed")
	}

	token, err := srv.tokenService.Generate(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
