package flashcard

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// ListFlashcards returns the cards matching filter. The result is never nil.
func (s *Service) ListFlashcards(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error) {
	cards, err := s.cards.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find flashcards by %s: %w", filter.Kind(), err)
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	return cards, nil
}
