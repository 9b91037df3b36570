package rest

import "net/http"

// Handlers groups the handlers mounted by Register. POST /api/transcribe is
// only mounted when TranscriptionEnabled is set.
type Handlers struct {
	Health               *HealthHandler
	Flashcards           *FlashcardHandler
	Generation           *GenerationHandler
	TranscriptionEnabled bool
}

// Register binds every route on mux.
func Register(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api", h.Health.Status)
	mux.HandleFunc("GET /api/{$}", h.Health.Status)

	mux.HandleFunc("GET /api/flashcard", h.Flashcards.List)
	mux.HandleFunc("POST /api/flashcard", h.Flashcards.Create)
	mux.HandleFunc("PUT /api/flashcard", h.Flashcards.Update)
	mux.HandleFunc("DELETE /api/flashcard", h.Flashcards.Delete)

	mux.HandleFunc("POST /api/generate-flashcards", h.Generation.Generate)
	if h.TranscriptionEnabled {
		mux.HandleFunc("POST /api/transcribe", h.Generation.Transcribe)
	}
}
