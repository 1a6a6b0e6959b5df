package repository

import (
	"context"
	"errors"

	"challengehub/internal/domain/entity"
)

// ErrChallengeNotFound is returned when no challenge matches the identifier.
var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeRepository is the challenges collection of the Record Store.
type ChallengeRepository interface {
	// Create inserts a new challenge.
	Create(ctx context.Context, challenge *entity.Challenge) error

	// FindByID retrieves a single challenge.
	FindByID(ctx context.Context, challengeID string) (*entity.Challenge, error)

	// FindByUser returns every challenge owned by userID in store order.
	// An empty slice is returned when there are none.
	FindByUser(ctx context.Context, userID string) ([]*entity.Challenge, error)

	// FindAll returns every challenge in store order.
	FindAll(ctx context.Context) ([]*entity.Challenge, error)

	// DeleteByID atomically removes the challenge and returns what was removed.
	// ErrChallengeNotFound is returned when nothing matched.
	DeleteByID(ctx context.Context, challengeID string) (*entity.Challenge, error)
}
