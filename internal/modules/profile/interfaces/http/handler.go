package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	exportdomain "github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/domain"
	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

const maxAvatarUploadBytes = 10 << 20

// PageService is the application surface the handler depends on.
type PageService interface {
	GetPage(ctx context.Context, userID uuid.UUID) (*domain.Page, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input application.UpdateProfileInput) (*domain.Page, error)
	SetSocialLink(ctx context.Context, userID uuid.UUID, platform exportdomain.Platform, input application.SocialLinkInput) (*domain.Page, error)
	AddCustomLink(ctx context.Context, userID uuid.UUID, input application.CustomLinkInput) (*domain.Page, error)
	UpdateCustomLink(ctx context.Context, userID uuid.UUID, linkID string, input application.CustomLinkInput) (*domain.Page, error)
	DuplicateCustomLink(ctx context.Context, userID uuid.UUID, linkID string) (*domain.Page, error)
	RemoveCustomLink(ctx context.Context, userID uuid.UUID, linkID string) (*domain.Page, error)
	ReorderLinks(ctx context.Context, userID uuid.UUID, ids []string) (*domain.Page, error)
	SetAvatar(ctx context.Context, userID uuid.UUID, url string) (*domain.Page, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) (*domain.Page, error)
}

// AvatarUploader hosts avatar images and returns their public URL.
type AvatarUploader interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error)
}

type PageHandler struct {
	service PageService
	avatars AvatarUploader
	logger  *zap.Logger
}

func NewPageHandler(service PageService, avatars AvatarUploader, logger *zap.Logger) *PageHandler {
	return &PageHandler{service: service, avatars: avatars, logger: logger}
}

func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	page, err := h.service.GetPage(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var input application.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	page, err := h.service.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) SetSocialLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	platform := exportdomain.Platform(r.PathValue("platform"))

	var input application.SocialLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	page, err := h.service.SetSocialLink(r.Context(), userID, platform, input)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) AddCustomLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var input application.CustomLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	page, err := h.service.AddCustomLink(r.Context(), userID, input)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, page)
}

func (h *PageHandler) UpdateCustomLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var input application.CustomLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	page, err := h.service.UpdateCustomLink(r.Context(), userID, r.PathValue("id"), input)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) DuplicateCustomLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	page, err := h.service.DuplicateCustomLink(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, page)
}

func (h *PageHandler) RemoveCustomLink(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	page, err := h.service.RemoveCustomLink(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) ReorderLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	page, err := h.service.ReorderLinks(r.Context(), userID, body.IDs)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

// UploadAvatar accepts a multipart "avatar" file, hosts the normalized image,
// and stores its URL on the page.
func (h *PageHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarUploadBytes)
	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "missing avatar file", err)
		return
	}
	defer file.Close()

	url, err := h.avatars.UploadAvatar(r.Context(), userID, file)
	if err != nil {
		h.logger.Error("avatar upload failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusUnprocessableEntity, "could not process avatar image", nil)
		return
	}

	page, err := h.service.SetAvatar(r.Context(), userID, url)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	page, err := h.service.CompleteOnboarding(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *PageHandler) writeServiceError(w http.ResponseWriter, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownPlatform),
		errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrTooManyLinks):
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrLinkNotFound), errors.Is(err, domain.ErrPageNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error(), nil)
	default:
		h.logger.Error("page operation failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
