package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

// multipartMemory is the part of a multipart form kept in memory; the rest
// spills to temporary files managed by net/http.
const multipartMemory = 8 << 20

// generationService defines the minimal interface needed by GenerationHandler.
type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (string, error)
	Transcribe(ctx context.Context, input generation.TranscribeInput) (generation.TranscribeResult, error)
}

// GenerationHandler serves the LLM-backed flashcard generation endpoints.
type GenerationHandler struct {
	svc            generationService
	uploadMaxBytes int64
	log            *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler. uploadMaxBytes bounds
// the transcription request body.
func NewGenerationHandler(svc generationService, uploadMaxBytes int64, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		svc:            svc,
		uploadMaxBytes: uploadMaxBytes,
		log:            logger.With("handler", "generation"),
	}
}

type generateRequest struct {
	Text               string `json:"text"`
	NumberOfFlashCards *int   `json:"numberOfFlashCards"`
}

type generateResponse struct {
	FlashcardsText string `json:"flashcardsText"`
}

type transcribeResponse struct {
	FlashcardsText string `json:"flashcardsText"`
	Transcription  string `json:"transcription"`
}

// Generate handles POST /api/generate-flashcards.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.svc.Generate(r.Context(), generation.GenerateInput{
		Text:  req.Text,
		Count: req.NumberOfFlashCards,
	})
	if err != nil {
		switch {
		case hasFieldError(err, "text"):
			writeError(w, http.StatusBadRequest, "Text is required to generate flashcards")
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, domain.ErrNotConfigured):
			h.log.ErrorContext(r.Context(), "generation unavailable", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "LLM API key not configured")
		default:
			h.log.ErrorContext(r.Context(), "generate flashcards failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "Failed to generate flashcards")
		}
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{FlashcardsText: text})
}

// Transcribe handles POST /api/transcribe (multipart: file, numberOfFlashCards).
func (h *GenerationHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if h.uploadMaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	var count *int
	if raw := strings.TrimSpace(r.FormValue("numberOfFlashCards")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "numberOfFlashCards: must be an integer")
			return
		}
		count = &n
	}

	res, err := h.svc.Transcribe(r.Context(), generation.TranscribeInput{
		Filename: header.Filename,
		Audio:    file,
		Count:    count,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		h.log.ErrorContext(r.Context(), "transcription failed",
			slog.String("file", header.Filename),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Transcription failed")
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{
		FlashcardsText: res.FlashcardsText,
		Transcription:  res.Transcription,
	})
}
