package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	"github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// ExportService is the application surface the handler depends on.
type ExportService interface {
	ExportArchive(ctx context.Context, userID uuid.UUID, snap domain.Snapshot) ([]byte, string, error)
	ExportInline(ctx context.Context, userID uuid.UUID, snap domain.Snapshot) (string, error)
	Catalog() []themedomain.Info
}

type ExportHandler struct {
	service ExportService
	logger  *zap.Logger
}

func NewExportHandler(service ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{service: service, logger: logger}
}

// Archive renders and packages the posted builder snapshot and streams the
// zip back as a download.
func (h *ExportHandler) Archive(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var snap domain.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid snapshot json", err)
		return
	}

	data, filename, err := h.service.ExportArchive(r.Context(), userID, snap)
	if err != nil {
		if errors.Is(err, domain.ErrExportInProgress) {
			utils.WriteError(w, http.StatusConflict, "export already in progress", nil)
			return
		}
		h.logger.Error("archive export failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "export failed", nil)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Inline renders the posted snapshot as one self-contained HTML document for
// the copy-to-clipboard action.
func (h *ExportHandler) Inline(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var snap domain.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid snapshot json", err)
		return
	}

	html, err := h.service.ExportInline(r.Context(), userID, snap)
	if err != nil {
		h.logger.Error("inline export failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "export failed", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"html": html})
}

// Themes lists the selectable theme catalog.
func (h *ExportHandler) Themes(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{"themes": h.service.Catalog()})
}
