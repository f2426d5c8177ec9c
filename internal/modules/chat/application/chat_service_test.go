package application

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *ChatService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini"}
	return NewChatService(cfg, zap.NewNop(),
		option.WithBaseURL(server.URL), option.WithMaxRetries(0))
}

func completionResponse(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-4o-mini",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": ` + string(mustJSON(content)) + `}, "finish_reason": "stop"}]
	}`
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func TestComplete(t *testing.T) {
	var captured map[string]any
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionResponse("Try a one-line bio that names what you do.")))
	})

	reply, err := service.Complete(context.Background(), "help me write a bio")
	require.NoError(t, err)
	assert.Equal(t, "Try a one-line bio that names what you do.", reply)

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Contains(t, first["content"], "link-in-bio")
	second := messages[1].(map[string]any)
	assert.Equal(t, "user", second["role"])
	assert.Equal(t, "help me write a bio", second["content"])
}

func TestComplete_UpstreamFailure(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	})

	_, err := service.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestComplete_NoAPIKey(t *testing.T) {
	service := NewChatService(config.OpenAIConfig{Model: "gpt-4o-mini"}, zap.NewNop())

	_, err := service.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestComplete_CanceledContextIsNotUpstreamError(t *testing.T) {
	started := make(chan struct{})
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := service.Complete(ctx, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUpstream)

	// give the handler goroutine a moment to unwind
	time.Sleep(10 * time.Millisecond)
}
