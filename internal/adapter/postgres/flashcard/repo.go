// Package flashcard implements the flashcard collection on top of a PostgreSQL
// jsonb table. Each row holds one schemaless document keyed by a uuid.
package flashcard

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	table  = "flashcards"
	entity = "flashcard"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type docRow struct {
	ID  string `db:"id"`
	Doc []byte `db:"doc"`
}

// Insert stores the card as a new document and returns the assigned id.
// Any id already set on the card is ignored.
func (r *Repo) Insert(ctx context.Context, card domain.Flashcard) (string, error) {
	card.ID = ""

	doc, err := json.Marshal(card)
	if err != nil {
		return "", fmt.Errorf("encode flashcard: %w", err)
	}

	query, args, err := psql.Insert(table).
		Columns("doc").
		Values(sq.Expr("?::jsonb", string(doc))).
		Suffix("RETURNING id::text").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert: %w", err)
	}

	var id string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", postgres.MapError(err, entity, "new")
	}
	return id, nil
}

// Find returns the cards matching filter in insertion order. An id that is
// not a valid uuid matches nothing.
func (r *Repo) Find(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error) {
	q := psql.Select("id::text AS id", "doc").From(table).OrderBy("created_at", "id")

	switch filter.Kind() {
	case domain.FilterByID:
		id, ok := canonicalID(filter.Value())
		if !ok {
			return []domain.Flashcard{}, nil
		}
		q = q.Where(sq.Eq{"id": id})
	case domain.FilterByDeck:
		q = q.Where(sq.Expr("doc ->> 'deckId' = ?", filter.Value()))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []docRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, filter.Kind().String())
	}

	cards := make([]domain.Flashcard, 0, len(rows))
	for _, row := range rows {
		var card domain.Flashcard
		if err := json.Unmarshal(row.Doc, &card); err != nil {
			return nil, fmt.Errorf("decode flashcard %s: %w", row.ID, err)
		}
		card.ID = row.ID
		cards = append(cards, card)
	}
	return cards, nil
}

// Update merges the patch into the stored document. Present top-level
// fields replace the stored ones, others are left untouched.
func (r *Repo) Update(ctx context.Context, id string, patch domain.FlashcardPatch) error {
	id, ok := canonicalID(id)
	if !ok {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	doc, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	query, args, err := psql.Update(table).
		Set("doc", sq.Expr("doc || ?::jsonb", string(doc))).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the card with the given id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// canonicalID rewrites any form uuid.Parse accepts (braces, urn:uuid:) into
// the hyphenated form that postgres uuid input understands.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return id, false
	}
	return u.String(), true
}
