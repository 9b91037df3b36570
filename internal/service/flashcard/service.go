package flashcard

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type flashcardRepo interface {
	Insert(ctx context.Context, card domain.Flashcard) (string, error)
	Find(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error)
	Update(ctx context.Context, id string, patch domain.FlashcardPatch) error
	Delete(ctx context.Context, id string) error
}

// Service provides flashcard CRUD operations over a document collection.
type Service struct {
	cards flashcardRepo
	log   *slog.Logger
}

// NewService creates a new Flashcard service.
func NewService(log *slog.Logger, cards flashcardRepo) *Service {
	return &Service{
		cards: cards,
		log:   log.With("service", "flashcard"),
	}
}
