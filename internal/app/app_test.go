package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/tokens"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "flashcards.db"),
		},
		LLM: config.LLMConfig{
			Provider:  config.ProviderAnthropic,
			MaxTokens: 256,
		},
		Generation:    config.GenerationConfig{DefaultCount: 5, MaxCount: 50},
		Transcription: config.TranscriptionConfig{UploadDir: t.TempDir()},
	}
}

func TestOpenStore_SQLite(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ctx := context.Background()

	st, err := openStore(ctx, cfg.Database, discardLogger())
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer st.close()

	if err := st.pinger.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	id, err := st.cards.Insert(ctx, domain.Flashcard{
		DeckID:    "geo",
		Question:  domain.Question{Question: "Capital of Peru?"},
		Answer:    domain.Answer{Answer: "Lima"},
		CreatedBy: "ana",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	cards, err := st.cards.Find(ctx, domain.ByID(id))
	if err != nil || len(cards) != 1 {
		t.Fatalf("find: %v, %d cards", err, len(cards))
	}
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := openStore(context.Background(), config.DatabaseConfig{Driver: "mongo", DSN: "x"}, discardLogger())
	if err == nil || !strings.Contains(err.Error(), "mongo") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	if err := Migrate(context.Background(), cfg.Database, discardLogger()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// Second run is a no-op.
	if err := Migrate(context.Background(), cfg.Database, discardLogger()); err != nil {
		t.Fatalf("Migrate again: %v", err)
	}
}

func TestNewProviders_NoKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := testConfig(t)
	cfg.Transcription.Enabled = true

	p, err := newProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("newProviders: %v", err)
	}
	if p.llm != nil {
		t.Error("llm must be nil without an API key")
	}
	if p.stt != nil {
		t.Error("transcriber must be nil without a key")
	}
	if p.tokens != nil {
		t.Error("token counter must be nil when encoding is empty")
	}
	if !strings.Contains(buf.String(), "LLM_API_KEY not set") {
		t.Errorf("expected warning, got %q", buf.String())
	}
}

func TestNewProviders_Anthropic(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.LLM.APIKey = "sk-test"

	p, err := newProviders(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("newProviders: %v", err)
	}
	if p.llm == nil {
		t.Fatal("expected a completer")
	}
}

func TestNewProviders_TokenCounterIsLazy(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.LLM.TokenEncoding = "cl100k_base"

	p, err := newProviders(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("newProviders: %v", err)
	}
	counter, ok := p.tokens.(*tokens.Counter)
	if !ok {
		t.Fatalf("tokens = %T, want *tokens.Counter", p.tokens)
	}
	if counter.Err() != nil {
		t.Errorf("encoding loaded at startup: %v", counter.Err())
	}
}

func TestGenerate_NotConfigured(t *testing.T) {
	t.Parallel()

	_, _, err := Generate(context.Background(), testConfig(t), discardLogger(), "Lima is the capital of Peru.", nil)
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerate_ValidatesBeforeProvider(t *testing.T) {
	t.Parallel()

	_, _, err := Generate(context.Background(), testConfig(t), discardLogger(), "  ", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
