// Package anthropic implements flashcard text completion on the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

// Provider sends one message per call to Claude.
type Provider struct {
	client    sdk.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewProvider creates a Provider talking to the public Anthropic API.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	return newProvider(cfg, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, cfg config.LLMConfig, logger *slog.Logger) *Provider {
	return newProvider(cfg, logger, option.WithBaseURL(baseURL))
}

func newProvider(cfg config.LLMConfig, logger *slog.Logger, extra ...option.RequestOption) *Provider {
	opts := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}, extra...)

	return &Provider{
		client:    sdk.NewClient(opts...),
		model:     cfg.DefaultModel(),
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Complete returns the concatenated text blocks of the model's reply.
func (p *Provider) Complete(ctx context.Context, system, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: p.maxTokens,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	p.log.DebugContext(ctx, "anthropic completion",
		slog.String("model", p.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return b.String(), nil
}
