package flashcard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// CreateFlashcard validates and stores a new card. Any client-supplied id is
// discarded; the store assigns one.
func (s *Service) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	card := input.Card
	card.ID = ""
	if len(card.Extra) > 0 {
		extra := make(map[string]json.RawMessage, len(card.Extra))
		for k, v := range card.Extra {
			if k != "_id" {
				extra[k] = v
			}
		}
		card.Extra = extra
	}

	id, err := s.cards.Insert(ctx, card)
	if err != nil {
		return "", fmt.Errorf("insert flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard created",
		slog.String("flashcard_id", id),
		slog.String("deck_id", card.DeckID),
		slog.String("created_by", card.CreatedBy),
	)

	return id, nil
}
