package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/tokens"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

type tokenCounter interface {
	Count(text string) int
}

// providers holds the optional upstream clients. A nil field means the
// matching feature is not configured.
type providers struct {
	llm    completer
	stt    transcriber
	tokens tokenCounter
}

func newProviders(ctx context.Context, cfg *config.Config, logger *slog.Logger) (providers, error) {
	var p providers

	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("LLM_API_KEY not set; flashcard generation disabled")
	} else {
		llm, err := newCompleter(ctx, cfg.LLM, logger)
		if err != nil {
			return providers{}, err
		}
		p.llm = llm
	}

	if cfg.Transcription.Enabled {
		key := cfg.TranscriptionKey()
		if key == "" {
			logger.Warn("transcription enabled without a gemini key; /api/transcribe will fail")
		} else {
			stt, err := gemini.NewTranscriber(ctx, key, cfg.Transcription, cfg.LLM.Timeout, logger)
			if err != nil {
				return providers{}, fmt.Errorf("transcriber: %w", err)
			}
			p.stt = stt
		}
	}

	if cfg.LLM.TokenEncoding != "" {
		counter, err := tokens.NewCounter(cfg.LLM.TokenEncoding)
		if err != nil {
			logger.Warn("token counting disabled",
				slog.String("encoding", cfg.LLM.TokenEncoding),
				slog.String("error", err.Error()),
			)
		} else {
			p.tokens = counter
		}
	}

	return p, nil
}

func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (completer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		p, err := gemini.NewProvider(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("gemini provider: %w", err)
		}
		return p, nil
	case config.ProviderAnthropic:
		return anthropic.NewProvider(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

func newGenerationService(cfg *config.Config, logger *slog.Logger, p providers) *generation.Service {
	return generation.NewService(logger, cfg.Generation, cfg.Transcription.UploadDir, p.llm, p.stt, p.tokens)
}

// Generate runs one generation request outside the HTTP server and returns
// the raw text together with its parsed cards.
func Generate(ctx context.Context, cfg *config.Config, logger *slog.Logger, text string, count *int) (string, []domain.GeneratedCard, error) {
	p, err := newProviders(ctx, cfg, logger)
	if err != nil {
		return "", nil, err
	}

	raw, err := newGenerationService(cfg, logger, p).Generate(ctx, generation.GenerateInput{Text: text, Count: count})
	if err != nil {
		return "", nil, err
	}
	return raw, domain.ParseGenerated(raw), nil
}
