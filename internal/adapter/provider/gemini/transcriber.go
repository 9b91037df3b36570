package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

var audioTypes = map[string]string{
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".mp4":  "audio/mp4",
	".mpeg": "audio/mpeg",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".webm": "audio/webm",
}

// Transcriber turns an audio file into text with a Gemini model.
type Transcriber struct {
	client   *genai.Client
	model    string
	language string
	timeout  time.Duration
	log      *slog.Logger
}

// NewTranscriber creates a Transcriber talking to the public Gemini API.
func NewTranscriber(ctx context.Context, apiKey string, cfg config.TranscriptionConfig, timeout time.Duration, logger *slog.Logger) (*Transcriber, error) {
	return NewTranscriberWithURL(ctx, "", apiKey, cfg, timeout, logger)
}

// NewTranscriberWithURL creates a Transcriber with a custom base URL (for testing).
func NewTranscriberWithURL(ctx context.Context, baseURL, apiKey string, cfg config.TranscriptionConfig, timeout time.Duration, logger *slog.Logger) (*Transcriber, error) {
	client, err := newClient(ctx, apiKey, baseURL)
	if err != nil {
		return nil, err
	}

	return &Transcriber{
		client:   client,
		model:    cfg.Model,
		language: cfg.Language,
		timeout:  timeout,
		log:      logger.With("adapter", "gemini_transcriber"),
	}, nil
}

// Transcribe sends the file at path inline and returns the transcript.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("gemini: read audio: %w", err)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	mimeType := audioMIME(path, data)
	instruction := fmt.Sprintf(
		"Transcribe this audio verbatim. The spoken language is %q. Return only the transcript text.",
		t.language,
	)
	parts := []*genai.Part{
		genai.NewPartFromText(instruction),
		genai.NewPartFromBytes(data, mimeType),
	}

	start := time.Now()
	resp, err := t.client.Models.GenerateContent(ctx, t.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		return "", fmt.Errorf("gemini: transcribe: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: empty transcript")
	}

	t.log.DebugContext(ctx, "audio transcribed",
		slog.String("mime_type", mimeType),
		slog.Int("bytes", len(data)),
		slog.Duration("duration", time.Since(start)),
	)
	return text, nil
}

func audioMIME(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := audioTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	return http.DetectContentType(data)
}
