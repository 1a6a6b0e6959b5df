// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"challengehub/internal/domain/entity"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"
	"challengehub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain interface.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user. The unique constraints decide races between concurrent registrations.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.db.WithContext(ctx).Create(fromUserDomain(user)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return duplicateKeyError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}
