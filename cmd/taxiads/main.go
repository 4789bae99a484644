package main

import (
	"context"
	"log/slog"
	"os"

	"taxiads/config"
	"taxiads/internal/delivery"
	"taxiads/internal/delivery/http"
	httpmw "taxiads/internal/delivery/http/middleware"
	"taxiads/internal/delivery/http/router/handler"
	"taxiads/internal/delivery/worker"
	"taxiads/internal/delivery/ws"
	"taxiads/internal/domain/service"
	logs "taxiads/internal/infra/log"
	"taxiads/internal/infra/persistence/postgres"
	"taxiads/internal/infra/pubsub"
	"taxiads/internal/infra/realtime"
	"taxiads/internal/infra/transfer"
	"taxiads/internal/usecase/impl"

	"go.uber.org/fx"
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
		realtime.NewStats,
		transfer.NewSessionStore,
		newChunkStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewAdvertisementRepository,
			postgres.NewCampaignRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionRegistry,
			newPlaybackTracker,
			pubsub.NewEventPublisher,
			ws.NewHub,
			ws.NewPushSender,
		),
	)
}

// newChunkStore roots the chunk staging area at the configured upload dir
func newChunkStore(cfg *config.Config) *transfer.ChunkStore {
	return transfer.NewChunkStore(cfg.Transfer.UploadDir)
}

func newSessionRegistry() service.SessionRegistry {
	return realtime.NewRegistry()
}

func newPlaybackTracker() service.PlaybackTracker {
	return realtime.NewPlayback()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDecisionService,
			impl.NewDeviceService,
			impl.NewAdvertisementService,
			impl.NewCampaignService,
			impl.NewUploadService,
			impl.NewDownloadService,
			impl.NewPushService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewAdvertisementHandler,
			handler.NewCampaignHandler,
			handler.NewUploadHandler,
			handler.NewDownloadHandler,
			handler.NewPushHandler,
			handler.NewMonitorHandler,
			ws.NewHandler,
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
			fx.Annotate(
				worker.NewUploadJanitor,
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
				os.Exit(1)
			}
		}()
	}
}
