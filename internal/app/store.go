package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	pgflashcard "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type flashcardRepo interface {
	Insert(ctx context.Context, card domain.Flashcard) (string, error)
	Find(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error)
	Update(ctx context.Context, id string, patch domain.FlashcardPatch) error
	Delete(ctx context.Context, id string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// store is the process-wide handle to the flashcard collection.
type store struct {
	cards  flashcardRepo
	pinger pinger
	close  func()
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to sqlite")
		return &store{
			cards:  db.Flashcards(),
			pinger: db,
			close: func() {
				if err := db.Close(); err != nil {
					logger.Warn("close sqlite", slog.String("error", err.Error()))
				}
			},
		}, nil

	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.DSN, logger); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres",
			slog.Int("max_conns", int(cfg.MaxConns)),
		)
		return &store{
			cards:  pgflashcard.New(pool),
			pinger: pool,
			close:  pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate brings the configured store's schema up to date.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) error {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		logger.Info("sqlite schema up to date")
		return db.Close()
	case config.DriverPostgres:
		return postgres.Migrate(ctx, cfg.DSN, logger)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
