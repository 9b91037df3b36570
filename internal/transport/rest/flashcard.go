package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

const maxJSONBody = 1 << 20

// flashcardService defines the minimal interface needed by FlashcardHandler.
type flashcardService interface {
	CreateFlashcard(ctx context.Context, input flashcard.CreateFlashcardInput) (string, error)
	ListFlashcards(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error)
	UpdateFlashcard(ctx context.Context, input flashcard.UpdateFlashcardInput) error
	DeleteFlashcard(ctx context.Context, input flashcard.DeleteFlashcardInput) error
}

// FlashcardHandler serves the flashcard collection endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type listResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

type createResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

// List handles GET /api/flashcard?flashcardId=&deckName=.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.NewFilter(q.Get("flashcardId"), q.Get("deckName"))

	cards, err := h.svc.ListFlashcards(r.Context(), filter)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list flashcards failed",
			slog.String("filter", filter.Kind().String()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Failed to fetch flashcards")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Flashcards: cards})
}

// Create handles POST /api/flashcard.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var card domain.Flashcard
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&card); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.svc.CreateFlashcard(r.Context(), flashcard.CreateFlashcardInput{Card: card})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "deckId, question, answer, and createdBy are required")
			return
		}
		h.log.ErrorContext(r.Context(), "create flashcard failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to create flashcard")
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{Message: "Flashcard created", InsertedID: id})
}

// Update handles PUT /api/flashcard?flashcardId=.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("flashcardId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "flashcardId query parameter is required")
		return
	}

	var patch domain.FlashcardPatch
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&patch)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.UpdateFlashcard(r.Context(), flashcard.UpdateFlashcardInput{ID: id, Patch: patch})
	if err != nil {
		h.handleError(w, r, err, "update", "Failed to update flashcard")
		return
	}

	writeMessage(w, http.StatusOK, "Flashcard updated")
}

// Delete handles DELETE /api/flashcard?flashcardId=.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("flashcardId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "flashcardId query parameter is required")
		return
	}

	if err := h.svc.DeleteFlashcard(r.Context(), flashcard.DeleteFlashcardInput{ID: id}); err != nil {
		h.handleError(w, r, err, "delete", "Failed to delete flashcard")
		return
	}

	writeMessage(w, http.StatusOK, "Flashcard deleted")
}

func (h *FlashcardHandler) handleError(w http.ResponseWriter, r *http.Request, err error, op, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Flashcard not found")
	default:
		h.log.ErrorContext(r.Context(), op+" flashcard failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
