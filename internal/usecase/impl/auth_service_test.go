package impl

import (
	"context"
	"testing"

	"challengehub/internal/domain/entity"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"
	mockRepo "challengehub/internal/mocks/repository"
	mockSvc "challengehub/internal/mocks/service"
	"challengehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	idGen    *mockSvc.MockIDGenerator
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	idGen := mockSvc.NewMockIDGenerator(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		IDGen:    idGen,
		Logger:   newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		idGen:    idGen,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hashed_pw", nil)
	fx.idGen.EXPECT().NewID().Return("u1")
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "u1", user.UserID)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "hashed_pw", user.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "u1", output.UserID)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{UserID: "u1"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "new@x.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{UserID: "u1"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_MissingFieldsCheckedAfterLookups(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "username", input: usecase.RegisterInput{Email: "a@x.com", Password: "pw"}},
		{name: "email", input: usecase.RegisterInput{Username: "alice", Password: "pw"}},
		{name: "password", input: usecase.RegisterInput{Username: "alice", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().FindByUsername(ctx, tt.input.Username).Return(nil, repository.ErrUserNotFound)
			fx.userRepo.EXPECT().FindByEmail(ctx, tt.input.Email).Return(nil, repository.ErrUserNotFound)

			_, err := fx.service.Register(ctx, &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestAuthService_Register_EmptyUsernameMatchingExistingRecord(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "").Return(&entity.User{UserID: "legacy"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_InsertRaceMapsToConflict(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "username", repoErr: repository.ErrDuplicateUsername, want: domainerrors.ErrUsernameTaken},
		{name: "email", repoErr: repository.ErrDuplicateEmail, want: domainerrors.ErrEmailTaken},
		{name: "unattributed", repoErr: repository.ErrDuplicateKey, want: domainerrors.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
			fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
			fx.hasher.EXPECT().Hash("pw").Return("hashed_pw", nil)
			fx.idGen.EXPECT().NewID().Return("u1")
			fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(tt.repoErr)

			_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find user")

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, storeErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("password too long"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{UserID: "u1", PasswordHash: "hashed_pw"}, nil)
	fx.hasher.EXPECT().Check("pw", "hashed_pw").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "u1", output.UserID)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)
	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "pw"})

	wrong := createTestAuthService(t)
	wrong.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{UserID: "u1", PasswordHash: "hashed_pw"}, nil)
	wrong.hasher.EXPECT().Check("wrong", "hashed_pw").Return(false)
	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, domainerrors.KindAuth, domainerrors.KindOf(wrongErr))
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find user"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "pw"})

	assert.Equal(t, domainerrors.KindStore, domainerrors.KindOf(err))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
