package flashcard

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

var _ flashcardRepo = &flashcardRepoMock{}

type flashcardRepoMock struct {
	InsertFunc func(ctx context.Context, card domain.Flashcard) (string, error)
	FindFunc   func(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error)
	UpdateFunc func(ctx context.Context, id string, patch domain.FlashcardPatch) error
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		Insert []struct {
			Ctx  context.Context
			Card domain.Flashcard
		}
		Find []struct {
			Ctx    context.Context
			Filter domain.Filter
		}
		Update []struct {
			Ctx   context.Context
			ID    string
			Patch domain.FlashcardPatch
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockInsert sync.RWMutex
	lockFind   sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *flashcardRepoMock) Insert(ctx context.Context, card domain.Flashcard) (string, error) {
	if mock.InsertFunc == nil {
		panic("flashcardRepoMock.InsertFunc: method is nil but flashcardRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Flashcard
	}{Ctx: ctx, Card: card}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, card)
}

func (mock *flashcardRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Card domain.Flashcard
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) Find(ctx context.Context, filter domain.Filter) ([]domain.Flashcard, error) {
	if mock.FindFunc == nil {
		panic("flashcardRepoMock.FindFunc: method is nil but flashcardRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.Filter
	}{Ctx: ctx, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *flashcardRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.Filter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) Update(ctx context.Context, id string, patch domain.FlashcardPatch) error {
	if mock.UpdateFunc == nil {
		panic("flashcardRepoMock.UpdateFunc: method is nil but flashcardRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Patch domain.FlashcardPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *flashcardRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    string
	Patch domain.FlashcardPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *flashcardRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("flashcardRepoMock.DeleteFunc: method is nil but flashcardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *flashcardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
