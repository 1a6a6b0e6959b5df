package postgres

import (
	"testing"

	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "username", err: &pgconn.PgError{Code: "23505", ConstraintName: usernameConstraint}, want: repository.ErrDuplicateUsername},
		{name: "email", err: &pgconn.PgError{Code: "23505", ConstraintName: emailConstraint}, want: repository.ErrDuplicateEmail},
		{name: "primary key", err: &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}, want: repository.ErrDuplicateKey},
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, want: repository.ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, duplicateKeyError(tt.err), tt.want)
		})
	}
}
