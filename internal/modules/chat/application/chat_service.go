package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/shared/infrastructure/config"
)

// ErrUpstream covers every completion failure, including a missing credential.
// Callers translate it to a generic response; the detail stays in the logs.
var ErrUpstream = errors.New("completion upstream unavailable")

const systemPrompt = "You are a helpful assistant inside a link-in-bio page builder. " +
	"You help the user write short bios, pick link titles and organize their page. " +
	"Keep answers brief and practical."

type ChatService struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewChatService builds the completion proxy. A missing API key leaves the
// client nil and every completion fails with ErrUpstream.
func NewChatService(cfg config.OpenAIConfig, logger *zap.Logger, opts ...option.RequestOption) *ChatService {
	s := &ChatService{model: cfg.Model, logger: logger}
	if cfg.APIKey == "" {
		logger.Warn("chat completions disabled, no api key configured")
		return s
	}
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)...)
	s.client = &client
	return s
}

// Complete forwards one user message to the completion API and returns the
// reply text. No conversation state is kept server side. A canceled context is
// returned as-is so callers can tell an aborted request from a failed one.
func (s *ChatService) Complete(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", ErrUpstream
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(message),
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Error("completion request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		s.logger.Error("completion response had no choices")
		return "", ErrUpstream
	}

	return resp.Choices[0].Message.Content, nil
}
