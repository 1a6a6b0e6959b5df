// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"challengehub/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup field.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned by Create when the username is already stored.
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrDuplicateEmail is returned by Create when the email is already stored.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrDuplicateKey is returned when a unique constraint fires but the store
	// cannot tell which one.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository is the users collection of the Record Store.
type UserRepository interface {
	// FindByID retrieves the user with the given opaque identifier.
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// FindByUsername retrieves the user with the given username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the user with the given email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user. Backends enforce username and email uniqueness
	// and report violations with ErrDuplicateUsername or ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error
}
