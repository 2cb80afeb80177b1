package main

import (
	"context"
	"log/slog"
	"os"

	"fuelradar/config"
	"fuelradar/internal/delivery"
	"fuelradar/internal/delivery/api"
	apimiddleware "fuelradar/internal/delivery/api/middleware"
	"fuelradar/internal/delivery/api/router/handler"
	"fuelradar/internal/delivery/scheduler"
	"fuelradar/internal/domain/constants"
	"fuelradar/internal/domain/repository"
	"fuelradar/internal/domain/service"
	"fuelradar/internal/infra/auth"
	"fuelradar/internal/infra/feed"
	logs "fuelradar/internal/infra/log"
	"fuelradar/internal/infra/metrics"
	"fuelradar/internal/infra/notification"
	"fuelradar/internal/infra/persistence/memory"
	"fuelradar/internal/infra/persistence/postgres"
	"fuelradar/internal/infra/pubsub"
	"fuelradar/internal/infra/qrcode"
	"fuelradar/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newStationRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newStationRepository selects the station price store backend
func newStationRepository(cfg *config.Config, db *gorm.DB) (repository.StationRepository, error) {
	backend := constants.StationBackendPostgres
	if cfg.Stations != nil && cfg.Stations.Backend != "" {
		backend = cfg.Stations.Backend
	}

	switch backend {
	case constants.StationBackendPostgres:
		return postgres.NewStationRepository(db), nil
	case constants.StationBackendMemory:
		return memory.NewStationRepository(), nil
	default:
		return nil, errors.Errorf("unknown station backend: %s", backend)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewTelegramLoginVerifier,
			notification.NewTelegramSender,
			newQRCodeService,
			feed.NewStationFeedSource,
			metrics.NewAlertMetrics,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityRanker,
			impl.NewAlertMatcher,
			impl.NewStationService,
			impl.NewAlertService,
			impl.NewAuthService,
			impl.NewIngestService,
			impl.NewDispatchService,
			impl.NewDeliveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStationHandler,
			handler.NewCatalogHandler,
			handler.NewStatusHandler,
			handler.NewAlertHandler,
			handler.NewAuthHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
