package main

import (
	"context"
	"log/slog"
	"os"

	"emporia/config"
	"emporia/internal/delivery"
	"emporia/internal/delivery/http"
	"emporia/internal/delivery/http/middleware"
	"emporia/internal/delivery/http/router/handler"
	"emporia/internal/domain/service"
	"emporia/internal/infra/auth"
	logs "emporia/internal/infra/log"
	"emporia/internal/infra/persistence/postgres"
	"emporia/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			prepareDatabase,
			startServer,
		),
	).Run()
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
			postgres.NewRoleRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
			postgres.NewBannerStore,
			postgres.NewCategoryStore,
			postgres.NewCountryStore,
			postgres.NewNotificationStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBannerUsecase,
			impl.NewCategoryUsecase,
			impl.NewCountryUsecase,
			impl.NewNotificationUsecase,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewIPAllowMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewContextMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBannerHandler,
			handler.NewCategoryHandler,
			handler.NewCountryHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// prepareDatabase migrates the schema and seeds the role set plus the
// bootstrap super-admin before the server starts accepting requests.
func prepareDatabase(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, cfg *config.Config, logger *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	return postgres.Seed(ctx, db, hasher, cfg, logger)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
