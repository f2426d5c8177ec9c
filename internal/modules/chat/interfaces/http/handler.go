package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

const maxMessageLength = 4000

// ChatService is the application surface the handler depends on.
type ChatService interface {
	Complete(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	service ChatService
	logger  *zap.Logger
}

func NewChatHandler(service ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// Complete proxies one chat message to the completion API. Upstream detail is
// never forwarded to the client; any completion failure reads the same.
func (h *ChatHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" || len(req.Message) > maxMessageLength {
		utils.WriteError(w, http.StatusBadRequest, "message must be between 1 and 4000 characters", nil)
		return
	}

	reply, err := h.service.Complete(r.Context(), req.Message)
	if err != nil {
		// the client went away, nobody is waiting for the reply
		if errors.Is(err, context.Canceled) {
			return
		}
		utils.WriteError(w, http.StatusBadGateway, "assistant is unavailable right now", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
