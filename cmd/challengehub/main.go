package main

import (
	"context"
	"log/slog"
	"os"

	"challengehub/config"
	"challengehub/internal/delivery"
	"challengehub/internal/delivery/api"
	"challengehub/internal/delivery/api/router/handler"
	"challengehub/internal/infra/auth"
	"challengehub/internal/infra/idgen"
	logs "challengehub/internal/infra/log"
	"challengehub/internal/infra/metrics"
	"challengehub/internal/infra/persistence"
	"challengehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		idgen.NewUUIDGenerator,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewChallengeService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAuthHandler,
		handler.NewChallengeHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer serves once every earlier start hook, including the store connection, has succeeded.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
