package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

// Provider generates text with a Gemini model.
type Provider struct {
	client    *genai.Client
	model     string
	maxTokens int32
	timeout   time.Duration
	log       *slog.Logger
}

// NewProvider creates a Provider talking to the public Gemini API.
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Provider, error) {
	return NewProviderWithURL(ctx, "", cfg, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
// An empty baseURL selects the public endpoint.
func NewProviderWithURL(ctx context.Context, baseURL string, cfg config.LLMConfig, logger *slog.Logger) (*Provider, error) {
	client, err := newClient(ctx, cfg.APIKey, baseURL)
	if err != nil {
		return nil, err
	}

	return &Provider{
		client:    client,
		model:     cfg.DefaultModel(),
		maxTokens: int32(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "gemini"),
	}, nil
}

// Complete returns the text of the first candidate.
func (p *Provider) Complete(ctx context.Context, system, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   p.maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	p.log.DebugContext(ctx, "gemini completion",
		slog.String("model", p.model),
		slog.Duration("duration", time.Since(start)),
	)

	return resp.Text(), nil
}
