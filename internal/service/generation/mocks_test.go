package generation

import (
	"context"
	"sync"
)

var (
	_ completer    = &completerMock{}
	_ transcriber  = &transcriberMock{}
	_ tokenCounter = &tokenCounterMock{}
)

type completerMock struct {
	CompleteFunc func(ctx context.Context, system string, prompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx    context.Context
			System string
			Prompt string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, system string, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		System string
		Prompt string
	}{Ctx: ctx, System: system, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, system, prompt)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx    context.Context
	System string
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

type transcriberMock struct {
	TranscribeFunc func(ctx context.Context, path string) (string, error)

	calls struct {
		Transcribe []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockTranscribe sync.RWMutex
}

func (mock *transcriberMock) Transcribe(ctx context.Context, path string) (string, error) {
	if mock.TranscribeFunc == nil {
		panic("transcriberMock.TranscribeFunc: method is nil but transcriber.Transcribe was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, path)
}

func (mock *transcriberMock) TranscribeCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockTranscribe.RLock()
	calls := mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}

type tokenCounterMock struct {
	CountFunc func(text string) int

	calls struct {
		Count []struct {
			Text string
		}
	}
	lockCount sync.RWMutex
}

func (mock *tokenCounterMock) Count(text string) int {
	if mock.CountFunc == nil {
		panic("tokenCounterMock.CountFunc: method is nil but tokenCounter.Count was just called")
	}
	callInfo := struct{ Text string }{Text: text}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(text)
}

func (mock *tokenCounterMock) CountCalls() []struct{ Text string } {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
