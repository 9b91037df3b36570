package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateFunc   func(ctx context.Context, input generation.GenerateInput) (string, error)
	TranscribeFunc func(ctx context.Context, input generation.TranscribeInput) (generation.TranscribeResult, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input generation.GenerateInput
		}
		Transcribe []struct {
			Ctx   context.Context
			Input generation.TranscribeInput
		}
	}
	lockGenerate   sync.RWMutex
	lockTranscribe sync.RWMutex
}

func (mock *generationServiceMock) Generate(ctx context.Context, input generation.GenerateInput) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generationServiceMock.GenerateFunc: method is nil but generationService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input generation.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *generationServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input generation.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *generationServiceMock) Transcribe(ctx context.Context, input generation.TranscribeInput) (generation.TranscribeResult, error) {
	if mock.TranscribeFunc == nil {
		panic("generationServiceMock.TranscribeFunc: method is nil but generationService.Transcribe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input generation.TranscribeInput
	}{Ctx: ctx, Input: input}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, input)
}

func (mock *generationServiceMock) TranscribeCalls() []struct {
	Ctx   context.Context
	Input generation.TranscribeInput
} {
	mock.lockTranscribe.RLock()
	calls := mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}
