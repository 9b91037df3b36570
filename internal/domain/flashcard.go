package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document field names of a stored flashcard.
const (
	FieldID        = "id"
	FieldDeckID    = "deckId"
	FieldQuestion  = "question"
	FieldAnswer    = "answer"
	FieldCreatedBy = "createdBy"
)

// Flashcard is a question/answer pair belonging to a deck. It is stored as a
// schemaless document: top-level fields outside the card shape are kept in
// Extra and written back unchanged.
type Flashcard struct {
	ID        string
	DeckID    string
	Question  Question
	Answer    Answer
	CreatedBy string
	Extra     map[string]json.RawMessage
}

// Question is the front side of a card: display text plus an optional drawing.
type Question struct {
	Question string       `json:"question"`
	Drawing  []StrokePath `json:"drawing,omitempty"`
}

// IsEmpty reports whether the side has neither text nor drawing.
func (q Question) IsEmpty() bool {
	return strings.TrimSpace(q.Question) == "" && len(q.Drawing) == 0
}

// Answer is the back side of a card.
type Answer struct {
	Answer  string       `json:"answer"`
	Drawing []StrokePath `json:"drawing,omitempty"`
}

// IsEmpty reports whether the side has neither text nor drawing.
func (a Answer) IsEmpty() bool {
	return strings.TrimSpace(a.Answer) == "" && len(a.Drawing) == 0
}

// StrokePath is one hand-drawn stroke: encoded path points, color and width.
type StrokePath struct {
	Path   []string `json:"path"`
	Color  string   `json:"color"`
	Stroke float64  `json:"stroke"`
}

// MarshalJSON writes the card as a flat document. ID is omitted when empty so
// the same encoding serves both storage and API responses.
func (f Flashcard) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(f.Extra)+5)
	for k, v := range f.Extra {
		doc[k] = v
	}
	if f.ID != "" {
		doc[FieldID] = f.ID
	}
	doc[FieldDeckID] = f.DeckID
	doc[FieldQuestion] = f.Question
	doc[FieldAnswer] = f.Answer
	doc[FieldCreatedBy] = f.CreatedBy
	return json.Marshal(doc)
}

// UnmarshalJSON reads a flat document. Unknown fields land in Extra.
func (f *Flashcard) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	card := Flashcard{}
	for key, raw := range doc {
		var err error
		switch key {
		case FieldID:
			err = json.Unmarshal(raw, &card.ID)
		case FieldDeckID:
			err = json.Unmarshal(raw, &card.DeckID)
		case FieldQuestion:
			err = json.Unmarshal(raw, &card.Question)
		case FieldAnswer:
			err = json.Unmarshal(raw, &card.Answer)
		case FieldCreatedBy:
			err = json.Unmarshal(raw, &card.CreatedBy)
		default:
			if card.Extra == nil {
				card.Extra = make(map[string]json.RawMessage)
			}
			card.Extra[key] = raw
		}
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}

	*f = card
	return nil
}

// FlashcardPatch is a partial document: each present top-level field replaces
// the stored one as a whole.
type FlashcardPatch map[string]json.RawMessage

// Keys returns the patched field names.
func (p FlashcardPatch) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	return keys
}
