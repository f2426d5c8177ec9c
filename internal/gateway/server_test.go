package gateway

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewServer(t *testing.T) {
	mux := http.NewServeMux()
	server := NewServer("8080", mux, zap.NewNop())

	assert.NotNil(t, server)
	assert.Equal(t, "8080", server.port)
	assert.NotNil(t, server.httpServer)
	assert.Equal(t, ":8080", server.httpServer.Addr)
}

func TestServer_Timeouts(t *testing.T) {
	mux := http.NewServeMux()
	server := NewServer("8080", mux, zap.NewNop())

	assert.Equal(t, readTimeout, server.httpServer.ReadTimeout)
	assert.Equal(t, writeTimeout, server.httpServer.WriteTimeout)
	assert.Equal(t, idleTimeout, server.httpServer.IdleTimeout)
}
