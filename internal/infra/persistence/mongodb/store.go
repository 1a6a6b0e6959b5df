// Package mongodb implements the Record Store on MongoDB using mongo-driver v2.
// Documents keep the field names of the collections the service has always used.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"challengehub/config"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

// Collection names
const (
	ColUsers      = "users"
	ColChallenges = "challenges"
)

// Unique index names. Duplicate-key errors are attributed to a field by these.
const (
	idxUserID      = "users_user_id_key"
	idxUsername    = "users_username_key"
	idxEmail       = "users_email_key"
	idxChallengeID = "challenges_challenge_id_key"
	idxChallengeBy = "challenges_user_id_idx"
)

// Params defines the required parameters
type Params struct {
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// Store holds the client and the selected database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates the client and registers ping, index setup and disconnect with the lifecycle.
func New(params Params) (*Store, error) {
	cfg := params.Config.MongoDB

	store, err := Open(cfg.URI, cfg.Database, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, cfg.ConnectTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				return err
			}
			if err := store.EnsureIndexes(ctx, params.Logger); err != nil {
				return err
			}

			params.Logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return store.Close(ctx)
		},
	})

	return store, nil
}

// Open creates a client for uri. The driver connects lazily, so Open does no I/O.
func Open(uri, database string, timeout time.Duration) (*Store, error) {
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetServerSelectionTimeout(timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return errors.Wrap(err, "failed to ping MongoDB")
	}

	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Users returns the users collection view.
func (s *Store) Users() repository.UserRepository {
	return &userRepository{col: s.col(ColUsers)}
}

// Challenges returns the challenges collection view.
func (s *Store) Challenges() repository.ChallengeRepository {
	return &challengeRepository{col: s.col(ColChallenges)}
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Server codes for an index that exists with another name or options.
const (
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

// EnsureIndexes creates the unique indexes that make registration and ID
// assignment race-free, plus the owner lookup index. An equivalent index
// already present under another name is kept and logged. Existing duplicate
// values fail the build and must be cleaned up first.
func (s *Store) EnsureIndexes(ctx context.Context, logger *slog.Logger) error {
	type idx struct {
		col    string
		name   string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, idxUserID, bson.D{{Key: "userId", Value: 1}}, true},
		{ColUsers, idxUsername, bson.D{{Key: "username", Value: 1}}, true},
		{ColUsers, idxEmail, bson.D{{Key: "email", Value: 1}}, true},
		{ColChallenges, idxChallengeID, bson.D{{Key: "challengeId", Value: 1}}, true},
		{ColChallenges, idxChallengeBy, bson.D{{Key: "userId", Value: 1}}, false},
	}

	for _, i := range indexes {
		opts := options.Index().SetName(i.name)
		if i.unique {
			opts.SetUnique(true)
		}
		model := mongo.IndexModel{Keys: i.keys, Options: opts}
		_, err := s.col(i.col).Indexes().CreateOne(ctx, model)
		switch {
		case err == nil:
		case indexConflict(err):
			logger.Warn("Keeping existing index",
				slog.String("collection", i.col),
				slog.String("index", i.name),
				slog.Any("error", err),
			)
		case mongo.IsDuplicateKeyError(err):
			return errors.Wrapf(err, "create index %s on %s: existing documents hold duplicate values", i.name, i.col)
		default:
			return errors.Wrapf(err, "create index %s on %s", i.name, i.col)
		}
	}

	return nil
}

func indexConflict(err error) bool {
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}

	return cmdErr.HasErrorCode(codeIndexOptionsConflict) || cmdErr.HasErrorCode(codeIndexKeySpecsConflict)
}
