// Package persistence selects the Record Store backend from configuration.
package persistence

import (
	"log/slog"

	"challengehub/config"
	"challengehub/internal/domain/repository"
	"challengehub/internal/errors"
	"challengehub/internal/infra/persistence/memory"
	"challengehub/internal/infra/persistence/mongodb"
	"challengehub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes both repositories to the container.
type Result struct {
	fx.Out

	Users      repository.UserRepository
	Challenges repository.ChallengeRepository
}

// New builds the repositories for cfg.Store.Driver.
func New(params Params) (Result, error) {
	switch driver := params.Config.Store.Driver; driver {
	case config.StoreDriverMongo:
		store, err := mongodb.New(mongodb.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Result{}, err
		}

		return Result{Users: store.Users(), Challenges: store.Challenges()}, nil
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Result{}, err
		}

		return Result{Users: postgres.NewUserRepository(db), Challenges: postgres.NewChallengeRepository(db)}, nil
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Result{Users: store.Users(), Challenges: store.Challenges()}, nil
	default:
		return Result{}, errors.Errorf("unknown store driver %q", driver)
	}
}
