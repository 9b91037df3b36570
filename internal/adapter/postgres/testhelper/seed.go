package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// UniqueDeck returns a deck id no other test uses, so parallel tests sharing
// the container never see each other's rows.
func UniqueDeck() string {
	return "deck-" + uuid.New().String()[:8]
}

// SeedFlashcard inserts a flashcard document directly and returns it with its id.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, deckID string) domain.Flashcard {
	t.Helper()

	card := domain.Flashcard{
		DeckID:    deckID,
		Question:  domain.Question{Question: "What is the capital of France?"},
		Answer:    domain.Answer{Answer: "Paris"},
		CreatedBy: "seed",
	}

	doc, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard encode: %v", err)
	}

	err = pool.QueryRow(context.Background(),
		`INSERT INTO flashcards (doc) VALUES ($1::jsonb) RETURNING id::text`, string(doc),
	).Scan(&card.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard insert: %v", err)
	}

	return card
}
