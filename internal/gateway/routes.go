package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	auth_http "github.com/Nexora712/linkbio-backend/internal/modules/auth/interfaces/http"
	chat_http "github.com/Nexora712/linkbio-backend/internal/modules/chat/interfaces/http"
	export_http "github.com/Nexora712/linkbio-backend/internal/modules/export/interfaces/http"
	notification_http "github.com/Nexora712/linkbio-backend/internal/modules/notification/interfaces/http"
	payment_http "github.com/Nexora712/linkbio-backend/internal/modules/payment/interfaces/http"
	profile_http "github.com/Nexora712/linkbio-backend/internal/modules/profile/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *auth_http.AuthHandler
	PageHandler         *profile_http.PageHandler
	ExportHandler       *export_http.ExportHandler
	PaymentHandler      *payment_http.PaymentHandler
	ChatHandler         *chat_http.ChatHandler
	NotificationHandler *notification_http.NotificationHandler

	// UploadsDir serves avatar files directly when local storage is active.
	// Empty when S3 is configured.
	UploadsDir string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := func(h http.HandlerFunc) http.Handler {
		return config.AuthMiddleware.RequireAuth(h)
	}

	// Health Check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth Routes
	mux.HandleFunc("POST /api/auth/register", config.AuthHandler.Register)
	mux.HandleFunc("POST /api/auth/login", config.AuthHandler.Login)
	mux.HandleFunc("POST /api/auth/google", config.AuthHandler.GoogleLogin)
	mux.Handle("GET /api/auth/me", requireAuth(config.AuthHandler.Me))

	// Page Builder Routes
	mux.Handle("GET /api/page", requireAuth(config.PageHandler.GetPage))
	mux.Handle("PATCH /api/page", requireAuth(config.PageHandler.UpdateProfile))
	mux.Handle("PUT /api/page/socials/{platform}", requireAuth(config.PageHandler.SetSocialLink))
	mux.Handle("POST /api/page/links", requireAuth(config.PageHandler.AddCustomLink))
	mux.Handle("PATCH /api/page/links/{id}", requireAuth(config.PageHandler.UpdateCustomLink))
	mux.Handle("POST /api/page/links/{id}/duplicate", requireAuth(config.PageHandler.DuplicateCustomLink))
	mux.Handle("DELETE /api/page/links/{id}", requireAuth(config.PageHandler.RemoveCustomLink))
	mux.Handle("PUT /api/page/links/order", requireAuth(config.PageHandler.ReorderLinks))
	mux.Handle("POST /api/page/avatar", requireAuth(config.PageHandler.UploadAvatar))
	mux.Handle("POST /api/page/onboarding/complete", requireAuth(config.PageHandler.CompleteOnboarding))

	// Export Routes
	mux.Handle("POST /api/export/archive", requireAuth(config.ExportHandler.Archive))
	mux.Handle("POST /api/export/inline", requireAuth(config.ExportHandler.Inline))
	mux.HandleFunc("GET /api/themes", config.ExportHandler.Themes)

	// Payment Routes
	mux.Handle("POST /api/orders", requireAuth(config.PaymentHandler.CreateOrder))
	mux.Handle("POST /api/orders/{id}/capture", requireAuth(config.PaymentHandler.CaptureOrder))
	mux.Handle("GET /api/orders", requireAuth(config.PaymentHandler.ListOrders))
	mux.HandleFunc("POST /webhooks/paypal", config.PaymentHandler.Webhook)

	// Chat Routes
	mux.Handle("POST /api/chat", requireAuth(config.ChatHandler.Complete))

	// Notification Routes
	mux.Handle("GET /api/notifications", requireAuth(config.NotificationHandler.List))
	mux.Handle("PATCH /api/notifications/{id}/read", requireAuth(config.NotificationHandler.MarkAsRead))
	mux.Handle("PATCH /api/notifications/read-all", requireAuth(config.NotificationHandler.MarkAllAsRead))
	mux.Handle("GET /api/notifications/unread-count", requireAuth(config.NotificationHandler.UnreadCount))
	mux.Handle("GET /ws", requireAuth(config.NotificationHandler.Subscribe))

	// Local avatar files
	if config.UploadsDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(config.UploadsDir))))
	}

	return mux
}
