package flashcard

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// CreateFlashcardInput holds the card to insert.
type CreateFlashcardInput struct {
	Card domain.Flashcard
}

// Validate checks all required fields and collects all errors.
func (i CreateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Card.DeckID) == "" {
		errs = append(errs, domain.FieldError{Field: domain.FieldDeckID, Message: "required"})
	}
	if i.Card.Question.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: domain.FieldQuestion, Message: "required"})
	}
	if i.Card.Answer.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: domain.FieldAnswer, Message: "required"})
	}
	if strings.TrimSpace(i.Card.CreatedBy) == "" {
		errs = append(errs, domain.FieldError{Field: domain.FieldCreatedBy, Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFlashcardInput holds a partial document for one card.
type UpdateFlashcardInput struct {
	ID    string
	Patch domain.FlashcardPatch
}

// Validate checks the id, forbids identity fields and type-checks the known
// card fields present in the patch.
func (i UpdateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "flashcardId", Message: "required"})
	}
	if len(i.Patch) == 0 {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one field must be provided"})
	}

	keys := i.Patch.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		raw := bytes.TrimSpace(i.Patch[key])
		switch key {
		case domain.FieldID, "_id":
			errs = append(errs, domain.FieldError{Field: key, Message: "immutable"})
			continue
		case domain.FieldDeckID, domain.FieldCreatedBy, domain.FieldQuestion, domain.FieldAnswer:
		default:
			continue
		}

		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			errs = append(errs, domain.FieldError{Field: key, Message: "must not be null"})
			continue
		}
		if msg := checkShape(key, raw); msg != "" {
			errs = append(errs, domain.FieldError{Field: key, Message: msg})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkShape(key string, raw []byte) string {
	switch key {
	case domain.FieldDeckID, domain.FieldCreatedBy:
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return "must be a string"
		}
		if strings.TrimSpace(s) == "" {
			return "must not be empty"
		}
	case domain.FieldQuestion:
		var q domain.Question
		if raw[0] != '{' || json.Unmarshal(raw, &q) != nil {
			return "must be an object {question, drawing?}"
		}
	case domain.FieldAnswer:
		var a domain.Answer
		if raw[0] != '{' || json.Unmarshal(raw, &a) != nil {
			return "must be an object {answer, drawing?}"
		}
	}
	return ""
}

// DeleteFlashcardInput identifies the card to remove.
type DeleteFlashcardInput struct {
	ID string
}

// Validate checks that the id is present.
func (i DeleteFlashcardInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("flashcardId", "required")
	}
	return nil
}
