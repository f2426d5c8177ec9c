package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway"
	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	"github.com/Nexora712/linkbio-backend/internal/modules/auth"
	"github.com/Nexora712/linkbio-backend/internal/modules/chat"
	"github.com/Nexora712/linkbio-backend/internal/modules/export"
	"github.com/Nexora712/linkbio-backend/internal/modules/filestorage"
	"github.com/Nexora712/linkbio-backend/internal/modules/notification"
	"github.com/Nexora712/linkbio-backend/internal/modules/payment"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile"
	"github.com/Nexora712/linkbio-backend/internal/modules/theme"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/database"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/logger"
	"github.com/Nexora712/linkbio-backend/pkg/migration"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := migration.AutoMigrate(cfg.Database.URL(), "migrations", zapLogger); err != nil {
		zapLogger.Fatal("database migration failed", zap.Error(err))
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	// redis is optional: without it exports lose the re-entrancy lock and the
	// icon stylesheet cache, nothing else
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		zapLogger.Warn("redis unavailable, continuing without it", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	storageModule, err := filestorage.NewModule(context.Background(), cfg.FileStorage)
	if err != nil {
		zapLogger.Fatal("file storage initialization failed", zap.Error(err))
	}

	themeModule := theme.NewModule(zapLogger)
	profileModule := profile.NewModule(db, storageModule.Service(), themeModule.Resolver(), zapLogger)
	authModule := auth.NewModule(db, profileModule.Service(), cfg.JWT.Secret, cfg.JWT.Expiry, cfg.Google.ClientID, zapLogger)

	notificationModule := notification.NewModule(db, zapLogger)
	defer notificationModule.Stop()

	exportModule := export.NewModule(cfg.Export, themeModule.Resolver(), redisClient, notificationModule.Service(), zapLogger)
	paymentModule := payment.NewModule(db, cfg.PayPal, themeModule.Resolver(), zapLogger)
	chatModule := chat.NewModule(cfg.OpenAI, zapLogger)

	routerConfig := gateway.RouterConfig{
		AuthMiddleware:      middleware.NewAuthMiddleware(cfg.JWT.Secret),
		AuthHandler:         authModule.HTTPHandler(),
		PageHandler:         profileModule.HTTPHandler(),
		ExportHandler:       exportModule.HTTPHandler(),
		PaymentHandler:      paymentModule.HTTPHandler(),
		ChatHandler:         chatModule.HTTPHandler(),
		NotificationHandler: notificationModule.HTTPHandler(),
	}
	if storageModule.LocalPathConfigured() {
		routerConfig.UploadsDir = cfg.FileStorage.LocalPath
	}

	mux := gateway.SetupRoutes(routerConfig)
	handler := middleware.PrometheusMiddleware(
		middleware.CORSMiddleware(mux, cfg.Server.AllowedOrigins))

	server := gateway.NewServer(cfg.Server.Port, handler, zapLogger)
	if err := server.Start(); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}
