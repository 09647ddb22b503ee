package main

import (
	"context"
	"log/slog"
	"os"

	"raseed/config"
	"raseed/internal/delivery"
	"raseed/internal/delivery/http"
	"raseed/internal/delivery/http/middleware"
	"raseed/internal/delivery/http/router/handler"
	"raseed/internal/domain/service"
	"raseed/internal/infra/auth"
	"raseed/internal/infra/identity"
	logs "raseed/internal/infra/log"
	"raseed/internal/infra/persistence/postgres"
	"raseed/internal/infra/pubsub"
	"raseed/internal/infra/qrcode"
	"raseed/internal/infra/recharge"
	"raseed/internal/infra/storage"
	"raseed/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewProfileRepository,
			postgres.NewRechargeCodeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			identity.NewIdentityService,
			storage.NewImageStorage,
			recharge.NewCodeGenerator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdminService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewRechargeService,
			impl.NewDirectoryService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewRechargeHandler,
			handler.NewUserHandler,
			handler.NewUploadHandler,
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
