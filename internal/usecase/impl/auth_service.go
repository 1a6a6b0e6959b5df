// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "challengehub/internal/delivery/context"
	"challengehub/internal/domain/entity"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"
	"challengehub/internal/domain/service"
	"challengehub/internal/errors"
	"challengehub/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	idGen    service.IDGenerator
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	IDGen    service.IDGenerator
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		idGen:    params.IDGen,
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user. Uniqueness lookups run before the presence check,
// so an empty username is still looked up first.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.ensureAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields.WrapMessage("register")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		UserID:       srv.idGen.NewID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("register")
		case errors.Is(err, repository.ErrDuplicateEmail), errors.Is(err, repository.ErrDuplicateKey):
			return nil, domainerrors.ErrEmailTaken.WrapMessage("register")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.UserID))

	return &usecase.RegisterOutput{UserID: user.UserID}, nil
}

func (srv *authService) ensureAvailable(ctx context.Context, username, email string) error {
	_, err := srv.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domainerrors.ErrUsernameTaken.WrapMessage("register")
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to look up username")
	}

	_, err = srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domainerrors.ErrEmailTaken.WrapMessage("register")
	case !errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(err, "failed to look up email")
	}

	return nil
}

// Login verifies the password and returns the stored user ID. Unknown email
// and wrong password fail with the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.UserID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
	}

	return &usecase.LoginOutput{UserID: user.UserID}, nil
}
