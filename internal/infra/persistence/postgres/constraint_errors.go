package postgres

import (
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// Constraint names created by AutoMigrate from the model tags.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// duplicateKeyError maps a unique violation to the repository sentinel for the violated field.
func duplicateKeyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return repository.ErrDuplicateUsername
		case emailConstraint:
			return repository.ErrDuplicateEmail
		}
	}

	return repository.ErrDuplicateKey
}
