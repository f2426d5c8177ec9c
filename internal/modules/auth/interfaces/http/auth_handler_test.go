package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/gateway/middleware"
	"github.com/Nexora712/linkbio-backend/internal/modules/auth/application"
	"github.com/Nexora712/linkbio-backend/internal/modules/auth/domain"
)

type mockAuthService struct {
	registerFunc    func(ctx context.Context, req application.RegisterRequest) (*application.AuthResponse, error)
	loginFunc       func(ctx context.Context, req application.LoginRequest) (*application.AuthResponse, error)
	googleLoginFunc func(ctx context.Context, googleClientID string, req application.GoogleLoginRequest) (*application.AuthResponse, error)
	getUserFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req application.RegisterRequest) (*application.AuthResponse, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req application.LoginRequest) (*application.AuthResponse, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) GoogleLogin(ctx context.Context, googleClientID string, req application.GoogleLoginRequest) (*application.AuthResponse, error) {
	return m.googleLoginFunc(ctx, googleClientID, req)
}

func (m *mockAuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getUserFunc(ctx, id)
}

func TestRegister_Created(t *testing.T) {
	service := &mockAuthService{
		registerFunc: func(ctx context.Context, req application.RegisterRequest) (*application.AuthResponse, error) {
			assert.Equal(t, "jane@example.com", req.Email)
			return &application.AuthResponse{
				Token: "token",
				User:  &domain.User{ID: uuid.New(), Email: req.Email},
			}, nil
		},
	}
	handler := NewAuthHandler(service, "client-id", zap.NewNop())

	body := bytes.NewBufferString(`{"email":"jane@example.com","password":"supersecret","name":"Jane"}`)
	req := httptest.NewRequest("POST", "/api/auth/register", body)
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp application.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token", resp.Token)
	// the password hash never leaves the server
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegister_Conflict(t *testing.T) {
	service := &mockAuthService{
		registerFunc: func(ctx context.Context, req application.RegisterRequest) (*application.AuthResponse, error) {
			return nil, domain.ErrUserAlreadyExists
		},
	}
	handler := NewAuthHandler(service, "client-id", zap.NewNop())

	body := bytes.NewBufferString(`{"email":"jane@example.com","password":"supersecret"}`)
	req := httptest.NewRequest("POST", "/api/auth/register", body)
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := &mockAuthService{
		loginFunc: func(ctx context.Context, req application.LoginRequest) (*application.AuthResponse, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(service, "client-id", zap.NewNop())

	body := bytes.NewBufferString(`{"email":"jane@example.com","password":"wrong"}`)
	req := httptest.NewRequest("POST", "/api/auth/login", body)
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestGoogleLogin_PassesConfiguredClientID(t *testing.T) {
	service := &mockAuthService{
		googleLoginFunc: func(ctx context.Context, googleClientID string, req application.GoogleLoginRequest) (*application.AuthResponse, error) {
			assert.Equal(t, "client-id", googleClientID)
			assert.Equal(t, "google-token", req.Token)
			return &application.AuthResponse{Token: "token", User: &domain.User{ID: uuid.New()}}, nil
		},
	}
	handler := NewAuthHandler(service, "client-id", zap.NewNop())

	body := bytes.NewBufferString(`{"token":"google-token"}`)
	req := httptest.NewRequest("POST", "/api/auth/google", body)
	rec := httptest.NewRecorder()

	handler.GoogleLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe(t *testing.T) {
	userID := uuid.New()
	service := &mockAuthService{
		getUserFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			assert.Equal(t, userID, id)
			return &domain.User{ID: id, Email: "jane@example.com"}, nil
		},
	}
	handler := NewAuthHandler(service, "client-id", zap.NewNop())

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserId, userID)
	rec := httptest.NewRecorder()

	handler.Me(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestMe_Unauthorized(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{}, "client-id", zap.NewNop())

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	handler.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
