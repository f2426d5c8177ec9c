package payment

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/payment/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/payment/infrastructure/paypal"
	"github.com/Nexora712/linkbio-backend/internal/modules/payment/infrastructure/persistence/postgres"
	payment_http "github.com/Nexora712/linkbio-backend/internal/modules/payment/interfaces/http"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

// Module represents the Payment module
type Module struct {
	service *application.OrderService
	handler *payment_http.PaymentHandler
}

// NewModule creates and initializes the Payment module
func NewModule(db *sqlx.DB, cfg config.PayPalConfig, themes application.ThemeCatalog, logger *zap.Logger) *Module {
	repo := postgres.NewOrderRepository(db)
	client := paypal.NewClient(cfg)
	service := application.NewOrderService(repo, client, themes, logger)
	handler := payment_http.NewPaymentHandler(service, logger)

	return &Module{
		service: service,
		handler: handler,
	}
}

// HTTPHandler returns the HTTP handler for the payment module
func (m *Module) HTTPHandler() *payment_http.PaymentHandler {
	return m.handler
}
