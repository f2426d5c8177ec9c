package auth

import (
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/auth/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/auth/infrastructure/persistence/postgres"
	auth_http "github.com/Nexora712/linkbio-backend/internal/modules/auth/interfaces/http"
)

// Module represents the Auth module
type Module struct {
	service *application.AuthService
	handler *auth_http.AuthHandler
}

// NewModule creates and initializes the Auth module
func NewModule(db *sqlx.DB, pages application.PageProvisioner, jwtSecret string, jwtExpiry time.Duration, googleClientID string, logger *zap.Logger) *Module {
	repository := postgres.NewUserRepository(db)
	service := application.NewAuthService(repository, pages, jwtSecret, jwtExpiry, logger)
	handler := auth_http.NewAuthHandler(service, googleClientID, logger)

	return &Module{
		service: service,
		handler: handler,
	}
}

// Service returns the auth service for use by the gateway layer
func (m *Module) Service() *application.AuthService {
	return m.service
}

// HTTPHandler returns the HTTP handler for the auth module
func (m *Module) HTTPHandler() *auth_http.AuthHandler {
	return m.handler
}
