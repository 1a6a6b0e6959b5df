// Package memory is an in-process Record Store used for local runs and tests.
// It enforces the same uniqueness rules as the database backends.
package memory

import (
	"context"
	"sync"

	"challengehub/internal/domain/entity"
	"challengehub/internal/domain/repository"
)

// Store holds both collections. Insertion order is kept so listings are stable.
type Store struct {
	mu         sync.RWMutex
	users      []*entity.User
	challenges []*entity.Challenge
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Users returns the users collection view.
func (s *Store) Users() repository.UserRepository {
	return &userRepository{store: s}
}

// Challenges returns the challenges collection view.
func (s *Store) Challenges() repository.ChallengeRepository {
	return &challengeRepository{store: s}
}

type userRepository struct {
	store *Store
}

func (r *userRepository) FindByID(_ context.Context, userID string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.UserID == userID })
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.Username == username })
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.Email == email })
}

func (r *userRepository) findBy(match func(*entity.User) bool) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if match(u) {
			found := *u

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		switch {
		case u.Username == user.Username:
			return repository.ErrDuplicateUsername
		case u.Email == user.Email:
			return repository.ErrDuplicateEmail
		case u.UserID == user.UserID:
			return repository.ErrDuplicateKey
		}
	}

	stored := *user
	r.store.users = append(r.store.users, &stored)

	return nil
}

type challengeRepository struct {
	store *Store
}

func (r *challengeRepository) Create(_ context.Context, challenge *entity.Challenge) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.challenges {
		if c.ChallengeID == challenge.ChallengeID {
			return repository.ErrDuplicateKey
		}
	}

	r.store.challenges = append(r.store.challenges, challenge.Clone())

	return nil
}

func (r *challengeRepository) FindByID(_ context.Context, challengeID string) (*entity.Challenge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.challenges {
		if c.ChallengeID == challengeID {
			return c.Clone(), nil
		}
	}

	return nil, repository.ErrChallengeNotFound
}

func (r *challengeRepository) FindByUser(_ context.Context, userID string) ([]*entity.Challenge, error) {
	return r.filter(func(c *entity.Challenge) bool { return c.UserID == userID }), nil
}

func (r *challengeRepository) FindAll(_ context.Context) ([]*entity.Challenge, error) {
	return r.filter(func(*entity.Challenge) bool { return true }), nil
}

func (r *challengeRepository) filter(match func(*entity.Challenge) bool) []*entity.Challenge {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*entity.Challenge{}
	for _, c := range r.store.challenges {
		if match(c) {
			result = append(result, c.Clone())
		}
	}

	return result
}

func (r *challengeRepository) DeleteByID(_ context.Context, challengeID string) (*entity.Challenge, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.challenges {
		if c.ChallengeID == challengeID {
			r.store.challenges = append(r.store.challenges[:i], r.store.challenges[i+1:]...)

			return c, nil
		}
	}

	return nil, repository.ErrChallengeNotFound
}
