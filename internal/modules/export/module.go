package export

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/export/application"
	exportHttp "github.com/Nexora712/linkbio-backend/internal/modules/export/interfaces/http"
	themeapp "github.com/Nexora712/linkbio-backend/internal/modules/theme/application"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

// Module represents the Export module
type Module struct {
	service *application.Service
	handler *exportHttp.ExportHandler
}

// NewModule creates and initializes the Export module
func NewModule(
	cfg config.ExportConfig,
	themes *themeapp.Resolver,
	redisClient *redis.Client,
	notifier application.Notifier,
	logger *zap.Logger,
) *Module {
	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = 15 * time.Second
	}

	renderer := application.NewRenderer()
	packager := application.NewPackager(httpClient, logger)
	inliner := application.NewFontInliner(httpClient, redisClient, cfg.IconStylesheetURL, logger)

	service := application.NewService(themes, renderer, packager, inliner, redisClient, notifier, cfg.LockTTL, logger)
	handler := exportHttp.NewExportHandler(service, logger)

	return &Module{
		service: service,
		handler: handler,
	}
}

// Service returns the export service
func (m *Module) Service() *application.Service {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *exportHttp.ExportHandler {
	return m.handler
}
