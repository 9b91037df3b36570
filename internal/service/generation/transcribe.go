package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// TranscribeResult is the transcript and the flashcards generated from it.
type TranscribeResult struct {
	FlashcardsText string
	Transcription  string
}

// Transcribe stores the upload in the upload directory, transcribes it and
// generates flashcards from the transcript. The stored file is removed
// before returning, whatever the outcome.
func (s *Service) Transcribe(ctx context.Context, input TranscribeInput) (TranscribeResult, error) {
	if err := input.Validate(s.maxCount); err != nil {
		return TranscribeResult{}, err
	}
	if s.stt == nil {
		return TranscribeResult{}, fmt.Errorf("transcriber: %w", domain.ErrNotConfigured)
	}

	path, err := s.saveUpload(input.Filename, input.Audio)
	if path != "" {
		defer s.removeUpload(ctx, path)
	}
	if err != nil {
		return TranscribeResult{}, err
	}

	start := time.Now()
	transcript, err := s.stt.Transcribe(ctx, path)
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("%w: transcribe: %w", domain.ErrUpstream, err)
	}
	if strings.TrimSpace(transcript) == "" {
		return TranscribeResult{}, fmt.Errorf("%w: empty transcript", domain.ErrUpstream)
	}

	s.log.InfoContext(ctx, "audio transcribed",
		slog.String("file", filepath.Base(path)),
		slog.Int("transcript_len", len(transcript)),
		slog.Duration("duration", time.Since(start)),
	)

	text, err := s.Generate(ctx, GenerateInput{Text: transcript, Count: input.Count})
	if err != nil {
		return TranscribeResult{}, err
	}

	return TranscribeResult{FlashcardsText: text, Transcription: transcript}, nil
}

// saveUpload writes audio to <uploadDir>/<unix-millis>-<nanoid>-<basename>.
// The returned path is set whenever a file was created, even on error.
func (s *Service) saveUpload(filename string, audio io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate upload id: %w", err)
	}

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), id, uploadBase(filename))
	path := filepath.Join(s.uploadDir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, audio); err != nil {
		_ = f.Close()
		return path, fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close upload file: %w", err)
	}
	return path, nil
}

func (s *Service) removeUpload(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.WarnContext(ctx, "failed to remove upload",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}

// uploadBase keeps only the last element of a client-supplied file name.
func uploadBase(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == "/" || base == "" {
		return "audio"
	}
	return base
}
