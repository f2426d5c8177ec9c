package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

const testSecret = "test-jwt-secret"

func TestRequireAuth_Success(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "test@example.com", testSecret, 1*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.Equal(t, userID, r.Context().Value(ContextKeyUserId))
		assert.Equal(t, "test@example.com", r.Context().Value(ContextKeyEmail))
	})

	middleware.RequireAuth(next).ServeHTTP(rec, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_TokenFromQueryParam(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "ws@example.com", testSecret, 1*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	rec := httptest.NewRecorder()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.Equal(t, userID, r.Context().Value(ContextKeyUserId))
	})

	middleware.RequireAuth(next).ServeHTTP(rec, req)

	assert.True(t, nextCalled)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	middleware.RequireAuth(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing or invalid authorization")
}

func TestRequireAuth_InvalidFormat(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	tests := []struct {
		name   string
		header string
	}{
		{"no_bearer", "token123"},
		{"wrong_prefix", "Basic token123"},
		{"missing_token", "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			middleware.RequireAuth(next).ServeHTTP(rec, req)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	middleware.RequireAuth(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	token, err := utils.GenerateToken(uuid.New(), "old@example.com", testSecret, -1*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	middleware.RequireAuth(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	middleware := NewAuthMiddleware(testSecret)

	token, err := utils.GenerateToken(uuid.New(), "user@example.com", "different-secret", 1*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
