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

type challengeService struct {
	userRepo      repository.UserRepository
	challengeRepo repository.ChallengeRepository
	idGen         service.IDGenerator
	logger        *slog.Logger
}

// ChallengeServiceParams holds dependencies for ChallengeService, injected by Fx.
type ChallengeServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	ChallengeRepo repository.ChallengeRepository
	IDGen         service.IDGenerator
	Logger        *slog.Logger
}

// NewChallengeService is the constructor for challengeService.
func NewChallengeService(params ChallengeServiceParams) usecase.ChallengeUsecase {
	return &challengeService{
		userRepo:      params.UserRepo,
		challengeRepo: params.ChallengeRepo,
		idGen:         params.IDGen,
		logger:        params.Logger,
	}
}

func (srv *challengeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a challenge for an existing user. Content fields are taken as
// given, except that null means not set.
func (srv *challengeService) Create(ctx context.Context, input *usecase.CreateChallengeInput) (*usecase.CreateChallengeOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidUserID.WrapMessage("create challenge")
		}

		return nil, errors.Wrap(err, "failed to look up challenge owner")
	}

	challenge := &entity.Challenge{
		ChallengeID: srv.idGen.NewID(),
		UserID:      input.UserID,
		Text:        entity.Content(input.Text),
		Description: entity.Content(input.Description),
		Dataset:     entity.Content(input.Dataset),
		Picture:     entity.Content(input.Picture),
		Result:      entity.Content(input.Result),
	}

	if err := srv.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	srv.log(ctx).Info("Challenge created",
		slog.String("challengeID", challenge.ChallengeID),
		slog.String("userID", challenge.UserID),
	)

	return &usecase.CreateChallengeOutput{
		ChallengeID: challenge.ChallengeID,
		UserID:      challenge.UserID,
	}, nil
}

func (srv *challengeService) Delete(ctx context.Context, challengeID string) (string, error) {
	deleted, err := srv.challengeRepo.DeleteByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return "", domainerrors.ErrChallengeNotFound.WrapMessage("delete challenge")
		}

		return "", errors.Wrap(err, "failed to delete challenge")
	}

	srv.log(ctx).Info("Challenge deleted", slog.String("challengeID", deleted.ChallengeID))

	return deleted.ChallengeID, nil
}

func (srv *challengeService) GetByID(ctx context.Context, challengeID string) (*entity.Challenge, error) {
	challenge, err := srv.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound.WrapMessage("get challenge")
		}

		return nil, errors.Wrap(err, "failed to get challenge")
	}

	return challenge, nil
}

// ListByOwner returns an empty slice, not an error, when the user has no challenges.
func (srv *challengeService) ListByOwner(ctx context.Context, userID string) ([]*entity.Challenge, error) {
	challenges, err := srv.challengeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges by owner")
	}

	return nonNil(challenges), nil
}

func (srv *challengeService) ListAll(ctx context.Context) ([]*entity.Challenge, error) {
	challenges, err := srv.challengeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges")
	}

	return nonNil(challenges), nil
}

func nonNil(challenges []*entity.Challenge) []*entity.Challenge {
	if challenges == nil {
		return []*entity.Challenge{}
	}

	return challenges
}
