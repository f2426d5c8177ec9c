package notification

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/notification/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/notification/infrastructure/persistence/postgres"
	"github.com/Nexora712/linkbio-backend/internal/modules/notification/infrastructure/websocket"
	notification_http "github.com/Nexora712/linkbio-backend/internal/modules/notification/interfaces/http"
)

// Module represents the Notification module
type Module struct {
	service *application.NotificationService
	handler *notification_http.NotificationHandler
	hub     *websocket.Hub
}

// NewModule creates and initializes the Notification module. The hub goroutine
// runs until Stop is called.
func NewModule(db *sqlx.DB, logger *zap.Logger) *Module {
	repo := postgres.NewNotificationRepository(db)
	hub := websocket.NewHub(logger)
	go hub.Run()

	service := application.NewNotificationService(repo, hub, logger)
	handler := notification_http.NewNotificationHandler(service, hub, logger)

	return &Module{
		service: service,
		handler: handler,
		hub:     hub,
	}
}

// HTTPHandler returns the HTTP handler for the notification module
func (m *Module) HTTPHandler() *notification_http.NotificationHandler {
	return m.handler
}

// Service returns the notification service, which also acts as the export
// pipeline's lifecycle notifier.
func (m *Module) Service() *application.NotificationService {
	return m.service
}

// Stop disconnects every client and stops the hub goroutine.
func (m *Module) Stop() {
	m.hub.Stop()
}
