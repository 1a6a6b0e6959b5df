package postgres

import (
	"context"
	"encoding/json"

	"challengehub/internal/domain/entity"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"
	"challengehub/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository returns the repository as a domain interface.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	if err := repo.db.WithContext(ctx).Create(fromChallengeDomain(challenge)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKey
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge")
	}

	return nil
}

func (repo *challengeRepository) FindByID(ctx context.Context, challengeID string) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel
	err := repo.db.WithContext(ctx).Where("challenge_id = ?", challengeID).First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find challenge")
	}

	return toChallengeDomain(&challengeM), nil
}

func (repo *challengeRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Challenge, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *challengeRepository) FindAll(ctx context.Context) ([]*entity.Challenge, error) {
	return repo.findMany(repo.db.WithContext(ctx))
}

func (repo *challengeRepository) findMany(tx *gorm.DB) ([]*entity.Challenge, error) {
	var models []model.ChallengeModel
	if err := tx.Order("seq").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list challenges")
	}

	challenges := make([]*entity.Challenge, 0, len(models))
	for i := range models {
		challenges = append(challenges, toChallengeDomain(&models[i]))
	}

	return challenges, nil
}

// DeleteByID removes the row in one statement and returns what was deleted.
func (repo *challengeRepository) DeleteByID(ctx context.Context, challengeID string) (*entity.Challenge, error) {
	var deleted []model.ChallengeModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("challenge_id = ?", challengeID).
		Delete(&deleted)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete challenge")
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, repository.ErrChallengeNotFound
	}

	return toChallengeDomain(&deleted[0]), nil
}

func toChallengeDomain(m *model.ChallengeModel) *entity.Challenge {
	return &entity.Challenge{
		ChallengeID: m.ChallengeID,
		UserID:      m.UserID,
		Text:        fromContentColumn(m.Text),
		Description: fromContentColumn(m.Description),
		Dataset:     fromContentColumn(m.Dataset),
		Picture:     fromContentColumn(m.Picture),
		Result:      fromContentColumn(m.Result),
	}
}

func fromChallengeDomain(c *entity.Challenge) *model.ChallengeModel {
	return &model.ChallengeModel{
		ChallengeID: c.ChallengeID,
		UserID:      c.UserID,
		Text:        toContentColumn(c.Text),
		Description: toContentColumn(c.Description),
		Dataset:     toContentColumn(c.Dataset),
		Picture:     toContentColumn(c.Picture),
		Result:      toContentColumn(c.Result),
	}
}

var jsonNull = datatypes.JSON("null")

func toContentColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return jsonNull
	}

	return datatypes.JSON(raw)
}

func fromContentColumn(col datatypes.JSON) json.RawMessage {
	if len(col) == 0 || string(col) == string(jsonNull) {
		return nil
	}

	return json.RawMessage(col)
}
