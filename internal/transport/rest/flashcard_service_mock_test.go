package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

var _ flashcardService = &flashcardServiceMock{}

type flashcardServiceMock struct {
	CreateFlashcardFunc func(ctx context.Context, input flashcard.CreateFlashcardInput) (string, error)
	ListFlashcardsFunc  func(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error)
	UpdateFlashcardFunc func(ctx context.Context, input flashcard.UpdateFlashcardInput) error
	DeleteFlashcardFunc func(ctx context.Context, input flashcard.DeleteFlashcardInput) error

	calls struct {
		CreateFlashcard []struct {
			Ctx   context.Context
			Input flashcard.CreateFlashcardInput
		}
		ListFlashcards []struct {
			Ctx    context.Context
			Filter domain.Filter
		}
		UpdateFlashcard []struct {
			Ctx   context.Context
			Input flashcard.UpdateFlashcardInput
		}
		DeleteFlashcard []struct {
			Ctx   context.Context
			Input flashcard.DeleteFlashcardInput
		}
	}
	lockCreateFlashcard sync.RWMutex
	lockListFlashcards  sync.RWMutex
	lockUpdateFlashcard sync.RWMutex
	lockDeleteFlashcard sync.RWMutex
}

func (mock *flashcardServiceMock) CreateFlashcard(ctx context.Context, input flashcard.CreateFlashcardInput) (string, error) {
	if mock.CreateFlashcardFunc == nil {
		panic("flashcardServiceMock.CreateFlashcardFunc: method is nil but flashcardService.CreateFlashcard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input flashcard.CreateFlashcardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateFlashcard.Lock()
	mock.calls.CreateFlashcard = append(mock.calls.CreateFlashcard, callInfo)
	mock.lockCreateFlashcard.Unlock()
	return mock.CreateFlashcardFunc(ctx, input)
}

func (mock *flashcardServiceMock) CreateFlashcardCalls() []struct {
	Ctx   context.Context
	Input flashcard.CreateFlashcardInput
} {
	mock.lockCreateFlashcard.RLock()
	calls := mock.calls.CreateFlashcard
	mock.lockCreateFlashcard.RUnlock()
	return calls
}

func (mock *flashcardServiceMock) ListFlashcards(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error) {
	if mock.ListFlashcardsFunc == nil {
		panic("flashcardServiceMock.ListFlashcardsFunc: method is nil but flashcardService.ListFlashcards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.Filter
	}{Ctx: ctx, Filter: filter}
	mock.lockListFlashcards.Lock()
	mock.calls.ListFlashcards = append(mock.calls.ListFlashcards, callInfo)
	mock.lockListFlashcards.Unlock()
	return mock.ListFlashcardsFunc(ctx, filter)
}

func (mock *flashcardServiceMock) ListFlashcardsCalls() []struct {
	Ctx    context.Context
	Filter domain.Filter
} {
	mock.lockListFlashcards.RLock()
	calls := mock.calls.ListFlashcards
	mock.lockListFlashcards.RUnlock()
	return calls
}

func (mock *flashcardServiceMock) UpdateFlashcard(ctx context.Context, input flashcard.UpdateFlashcardInput) error {
	if mock.UpdateFlashcardFunc == nil {
		panic("flashcardServiceMock.UpdateFlashcardFunc: method is nil but flashcardService.UpdateFlashcard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input flashcard.UpdateFlashcardInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateFlashcard.Lock()
	mock.calls.UpdateFlashcard = append(mock.calls.UpdateFlashcard, callInfo)
	mock.lockUpdateFlashcard.Unlock()
	return mock.UpdateFlashcardFunc(ctx, input)
}

func (mock *flashcardServiceMock) UpdateFlashcardCalls() []struct {
	Ctx   context.Context
	Input flashcard.UpdateFlashcardInput
} {
	mock.lockUpdateFlashcard.RLock()
	calls := mock.calls.UpdateFlashcard
	mock.lockUpdateFlashcard.RUnlock()
	return calls
}

func (mock *flashcardServiceMock) DeleteFlashcard(ctx context.Context, input flashcard.DeleteFlashcardInput) error {
	if mock.DeleteFlashcardFunc == nil {
		panic("flashcardServiceMock.DeleteFlashcardFunc: method is nil but flashcardService.DeleteFlashcard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input flashcard.DeleteFlashcardInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteFlashcard.Lock()
	mock.calls.DeleteFlashcard = append(mock.calls.DeleteFlashcard, callInfo)
	mock.lockDeleteFlashcard.Unlock()
	return mock.DeleteFlashcardFunc(ctx, input)
}

func (mock *flashcardServiceMock) DeleteFlashcardCalls() []struct {
	Ctx   context.Context
	Input flashcard.DeleteFlashcardInput
} {
	mock.lockDeleteFlashcard.RLock()
	calls := mock.calls.DeleteFlashcard
	mock.lockDeleteFlashcard.RUnlock()
	return calls
}
