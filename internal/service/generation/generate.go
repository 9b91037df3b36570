package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Generate asks the LLM for flashcards about input.Text and returns the raw
// completion. The output format is not checked.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (string, error) {
	if err := input.Validate(s.maxCount); err != nil {
		return "", err
	}
	if s.llm == nil {
		return "", fmt.Errorf("llm provider: %w", domain.ErrNotConfigured)
	}

	count := s.defaultCount
	if input.Count != nil {
		count = *input.Count
	}

	prompt := BuildPrompt(count, input.Text)

	attrs := []any{slog.Int("count", count), slog.Int("text_len", len(input.Text))}
	if s.tokens != nil {
		attrs = append(attrs, slog.Int("prompt_tokens", s.tokens.Count(SystemPrompt)+s.tokens.Count(prompt)))
	}
	s.log.DebugContext(ctx, "requesting flashcards", attrs...)

	start := time.Now()
	text, err := s.llm.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: complete: %w", domain.ErrUpstream, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrUpstream)
	}

	s.log.InfoContext(ctx, "flashcards generated",
		slog.Int("count", count),
		slog.Int("cards_parsed", len(domain.ParseGenerated(text))),
		slog.Duration("duration", time.Since(start)),
	)

	return text, nil
}
