// Package sqlite keeps the flashcard collection in an embedded SQLite
// database through gorm. Documents are stored as JSON text.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Store owns the gorm handle. One Store is opened per process.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database file at dsn and migrates the
// flashcards table.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}

	s := &Store{db: db}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(&flashcardRow{}); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return s, nil
}

// Ping checks that the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Flashcards returns the repository over the flashcards table.
func (s *Store) Flashcards() *FlashcardRepo {
	return &FlashcardRepo{db: s.db}
}

func mapError(err error, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("flashcard %s: %w", id, err)
}
