package flashcard

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteFlashcard removes one card.
func (s *Service) DeleteFlashcard(ctx context.Context, input DeleteFlashcardInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deleted", slog.String("flashcard_id", input.ID))
	return nil
}
