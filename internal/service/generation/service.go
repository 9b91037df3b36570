package generation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/config"
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

// Service turns text or recorded audio into flashcard text with an LLM.
// A nil completer or transcriber leaves the matching operation unconfigured.
type Service struct {
	llm          completer
	stt          transcriber
	tokens       tokenCounter
	defaultCount int
	maxCount     int
	uploadDir    string
	log          *slog.Logger
}

// NewService creates a new Generation service. tokens may be nil.
func NewService(
	log *slog.Logger,
	cfg config.GenerationConfig,
	uploadDir string,
	llm completer,
	stt transcriber,
	tokens tokenCounter,
) *Service {
	return &Service{
		llm:          llm,
		stt:          stt,
		tokens:       tokens,
		defaultCount: cfg.DefaultCount,
		maxCount:     cfg.MaxCount,
		uploadDir:    uploadDir,
		log:          log.With("service", "generation"),
	}
}
