package chat

import (
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/chat/application"
	chat_http "github.com/Nexora712/linkbio-backend/internal/modules/chat/interfaces/http"
	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

// Module represents the Chat module
type Module struct {
	handler *chat_http.ChatHandler
}

// NewModule creates and initializes the Chat module
func NewModule(cfg config.OpenAIConfig, logger *zap.Logger) *Module {
	service := application.NewChatService(cfg, logger)
	handler := chat_http.NewChatHandler(service, logger)
	return &Module{handler: handler}
}

// HTTPHandler returns the HTTP handler for the chat module
func (m *Module) HTTPHandler() *chat_http.ChatHandler {
	return m.handler
}
