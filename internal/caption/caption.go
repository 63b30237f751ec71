// internal/caption/caption.go
// Caption suggestions from a generative text service.

package caption

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/metrics"
)

// Prompt is sent as the only user message.
const Prompt = "Write a catchy, short Instagram caption for a travel or lifestyle photo with 3 trending hashtags. Only return the text."

var (
	ErrMissingCredential = errors.New("API Key missing. Cannot generate caption.")
	ErrGenerationFailed  = errors.New("Failed to generate caption. Please try again.")
	ErrBusy              = errors.New("caption generation already in progress")
)

// ChatClient is the part of the OpenAI client the generator calls.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Generator struct {
	client ChatClient
	model  string
	busy   atomic.Bool
	log    *zap.Logger
}

// NewGenerator builds a generator against an OpenAI-compatible endpoint.
// Without an API key the generator exists but every call fails with ErrMissingCredential.
func NewGenerator(cfg Config, log *zap.Logger) *Generator {
	g := &Generator{model: cfg.Model, log: log}
	if cfg.APIKey == "" {
		return g
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	g.client = openai.NewClientWithConfig(clientConfig)
	return g
}

// NewGeneratorWithClient is used when the caller owns the client.
func NewGeneratorWithClient(client ChatClient, model string, log *zap.Logger) *Generator {
	return &Generator{client: client, model: model, log: log}
}

// Busy reports whether a request is in flight.
func (g *Generator) Busy() bool {
	return g.busy.Load()
}

// Generate asks for one caption. An empty completion yields "" without error.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	if g.client == nil {
		metrics.CaptionRequest("missing_credential", 0)
		return "", ErrMissingCredential
	}
	if !g.busy.CompareAndSwap(false, true) {
		metrics.CaptionRequest("busy", 0)
		return "", ErrBusy
	}
	defer g.busy.Store(false)

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: Prompt,
			},
		},
	})
	elapsed := time.Since(start)

	if err != nil {
		g.log.Error("caption generation failed", zap.String("model", g.model), zap.Error(err))
		metrics.CaptionRequest("error", elapsed)
		return "", ErrGenerationFailed
	}

	metrics.CaptionRequest("ok", elapsed)
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
