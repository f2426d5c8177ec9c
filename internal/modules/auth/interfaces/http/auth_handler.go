package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	"github.com/Nexora712/linkbio-backend/internal/modules/auth/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/auth/domain"
	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

// AuthService defines the interface for auth operations
type AuthService interface {
	Register(ctx context.Context, req application.RegisterRequest) (*application.AuthResponse, error)
	Login(ctx context.Context, req application.LoginRequest) (*application.AuthResponse, error)
	GoogleLogin(ctx context.Context, googleClientID string, req application.GoogleLoginRequest) (*application.AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type AuthHandler struct {
	service        AuthService
	googleClientID string
	logger         *zap.Logger
}

func NewAuthHandler(service AuthService, googleClientID string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:        service,
		googleClientID: googleClientID,
		logger:         logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			utils.WriteError(w, http.StatusConflict, "user already exists", nil)
			return
		}
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			utils.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req application.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), h.googleClientID, req)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, "user not found", nil)
			return
		}
		h.logger.Error("fetch current user failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}
