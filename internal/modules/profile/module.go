package profile

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/profile/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/infrastructure/persistence/postgres"
	profile_http "github.com/Nexora712/linkbio-backend/internal/modules/profile/interfaces/http"
)

// Module represents the Profile module
type Module struct {
	service *application.PageService
	handler *profile_http.PageHandler
}

// NewModule creates and initializes the Profile module
func NewModule(db *sqlx.DB, avatars profile_http.AvatarUploader, themes application.ThemeStyler, logger *zap.Logger) *Module {
	repo := postgres.NewPageRepository(db)
	service := application.NewPageService(repo, themes, logger)
	handler := profile_http.NewPageHandler(service, avatars, logger)

	return &Module{
		service: service,
		handler: handler,
	}
}

// HTTPHandler returns the HTTP handler for the profile module
func (m *Module) HTTPHandler() *profile_http.PageHandler {
	return m.handler
}

// Service returns the page service
func (m *Module) Service() *application.PageService {
	return m.service
}
