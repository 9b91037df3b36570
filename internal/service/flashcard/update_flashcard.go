package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// UpdateFlashcard replaces the top-level fields present in the patch.
func (s *Service) UpdateFlashcard(ctx context.Context, input UpdateFlashcardInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Update(ctx, input.ID, input.Patch); err != nil {
		return fmt.Errorf("update flashcard: %w", err)
	}

	fields := input.Patch.Keys()
	sort.Strings(fields)
	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("flashcard_id", input.ID),
		slog.String("fields", strings.Join(fields, ",")),
	)

	return nil
}
