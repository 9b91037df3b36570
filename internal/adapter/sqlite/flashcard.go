package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type flashcardRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Doc       string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (flashcardRow) TableName() string { return "flashcards" }

// FlashcardRepo implements the flashcard collection over SQLite.
type FlashcardRepo struct {
	db *gorm.DB
}

// Insert stores the card under a fresh uuid and returns it.
func (r *FlashcardRepo) Insert(ctx context.Context, card domain.Flashcard) (string, error) {
	card.ID = ""
	doc, err := json.Marshal(card)
	if err != nil {
		return "", fmt.Errorf("encode flashcard: %w", err)
	}

	row := flashcardRow{ID: uuid.NewString(), Doc: string(doc)}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", mapError(err, row.ID)
	}
	return row.ID, nil
}

// Find returns the matching cards in insertion order.
func (r *FlashcardRepo) Find(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error) {
	q := r.db.WithContext(ctx).Order("rowid")

	switch filter.Kind() {
	case domain.FilterByID:
		q = q.Where("id = ?", filter.Value())
	case domain.FilterByDeck:
		q = q.Where("json_extract(doc, '$.deckId') = ?", filter.Value())
	}

	var rows []flashcardRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, mapError(err, filter.Kind().String())
	}

	cards := make([]domain.Flashcard, 0, len(rows))
	for _, row := range rows {
		var card domain.Flashcard
		if err := json.Unmarshal([]byte(row.Doc), &card); err != nil {
			return nil, fmt.Errorf("decode flashcard %s: %w", row.ID, err)
		}
		card.ID = row.ID
		cards = append(cards, card)
	}
	return cards, nil
}

// Update sets each top-level field of the patch on the stored document.
func (r *FlashcardRepo) Update(ctx context.Context, id string, patch domain.FlashcardPatch) error {
	expr, args, err := jsonSet(patch)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&flashcardRow{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"doc":        gorm.Expr(expr, args...),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return mapError(res.Error, id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the card with the given id.
func (r *FlashcardRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&flashcardRow{})
	if res.Error != nil {
		return mapError(res.Error, id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// jsonSet builds json_set(doc, '$."k1"', json(v1), ...) with keys in sorted
// order so the statement is stable.
func jsonSet(patch domain.FlashcardPatch) (string, []any, error) {
	keys := patch.Keys()
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("json_set(doc")
	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		if strings.ContainsAny(k, `"\`) {
			return "", nil, domain.NewValidationError(k, "unsupported field name")
		}
		b.WriteString(", ?, json(?)")
		args = append(args, `$."`+k+`"`, string(patch[k]))
	}
	b.WriteString(")")
	return b.String(), args, nil
}
