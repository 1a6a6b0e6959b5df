package usecase

import (
	"context"
	"encoding/json"

	"challengehub/internal/domain/entity"
)

// CreateChallengeInput carries the owner and the free-form content of a challenge.
// Content fields are raw JSON values of any type.
type CreateChallengeInput struct {
	UserID      string
	Text        json.RawMessage
	Description json.RawMessage
	Dataset     json.RawMessage
	Picture     json.RawMessage
	Result      json.RawMessage
}

// CreateChallengeOutput identifies the stored challenge.
type CreateChallengeOutput struct {
	ChallengeID string
	UserID      string
}

// ChallengeUsecase defines the challenge lifecycle.
type ChallengeUsecase interface {
	Create(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error)
	// Delete removes a challenge by ID. Any caller that knows the ID may delete it.
	Delete(ctx context.Context, challengeID string) (string, error)
	GetByID(ctx context.Context, challengeID string) (*entity.Challenge, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Challenge, error)
	ListAll(ctx context.Context) ([]*entity.Challenge, error)
}
