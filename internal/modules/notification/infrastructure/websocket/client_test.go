package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialTestHub(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r, userID)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServeWs_DeliversExportEvent(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	defer hub.Stop()

	userID := uuid.New()
	conn := dialTestHub(t, hub, userID)

	// Give the read pump a moment to register the client with the hub.
	time.Sleep(50 * time.Millisecond)
	hub.SendToUser(userID, []byte(`{"title":"Export ready","message":"jane-doe.zip","type":"success"}`))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, body, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)

	var event struct {
		Title   string `json:"title"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, "Export ready", event.Title)
	assert.Equal(t, "jane-doe.zip", event.Message)
	assert.Equal(t, "success", event.Type)
}

func TestServeWs_IgnoresInboundFrames(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	defer hub.Stop()

	userID := uuid.New()
	conn := dialTestHub(t, hub, userID)

	// The hub is push-only; inbound text must not break the connection.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello?")))
	time.Sleep(50 * time.Millisecond)

	hub.SendToUser(userID, []byte(`{"title":"Export started","type":"info"}`))
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, body, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(body), "Export started")
}

func TestServeWs_UpgradeFailure(t *testing.T) {
	hub := NewHub(zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	w := httptest.NewRecorder()

	ServeWs(hub, w, req, uuid.New())

	// A plain HTTP request cannot upgrade; the upgrader answers for us.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
