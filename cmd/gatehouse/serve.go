package main

import (
	"context"
	"log/slog"
	"os"

	"gatehouse/config"
	"gatehouse/internal/delivery"
	"gatehouse/internal/delivery/api"
	"gatehouse/internal/delivery/api/router/handler"
	"gatehouse/internal/infra/auth"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/metrics"
	"gatehouse/internal/infra/notification"
	"gatehouse/internal/infra/persistence/migration"
	"gatehouse/internal/infra/persistence/postgres"
	"gatehouse/internal/infra/pubsub"
	"gatehouse/internal/infra/sweeper"
	"gatehouse/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(*cobra.Command, []string) error {
			return runApp(serveOptions())
		},
	}
}

func serveOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migration.RegisterAutoMigrate,
		),
		sweeper.Module,
		fx.Invoke(
			startServer,
		),
	)
}

// runApp blocks until the app receives a shutdown signal.
func runApp(opts fx.Option) error {
	app := fx.New(opts)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()

	return nil
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSignupStageRepository,
			postgres.NewResetStageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTCodec,
		),
		metrics.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialVerifier,
			impl.NewSessionService,
			impl.NewSignupService,
			impl.NewPasswordResetService,
			impl.NewProfileService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCookieJar,
			handler.NewSessionHandler,
			handler.NewSignupHandler,
			handler.NewPasswordHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the start hooks registered before it
// (migrations, sweeper) have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
