package lexicon

import (
	"context"
	"sync"

	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/provider"
)

var _ dictionaryProvider = &dictionaryProviderMock{}

type dictionaryProviderMock struct {
	FetchEntryFunc func(ctx context.Context, word string) (*provider.DictionaryResult, error)

	calls struct {
		FetchEntry []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockFetchEntry sync.RWMutex
}

func (mock *dictionaryProviderMock) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	if mock.FetchEntryFunc == nil {
		panic("dictionaryProviderMock.FetchEntryFunc: method is nil but dictionaryProvider.FetchEntry was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockFetchEntry.Lock()
	mock.calls.FetchEntry = append(mock.calls.FetchEntry, callInfo)
	mock.lockFetchEntry.Unlock()
	return mock.FetchEntryFunc(ctx, word)
}

func (mock *dictionaryProviderMock) FetchEntryCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockFetchEntry.RLock()
	calls := mock.calls.FetchEntry
	mock.lockFetchEntry.RUnlock()
	return calls
}

var _ entryGenerator = &entryGeneratorMock{}

type entryGeneratorMock struct {
	GenerateFunc func(ctx context.Context, word string) domain.WordDetails

	calls struct {
		Generate []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *entryGeneratorMock) Generate(ctx context.Context, word string) domain.WordDetails {
	if mock.GenerateFunc == nil {
		panic("entryGeneratorMock.GenerateFunc: method is nil but entryGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, word)
}

func (mock *entryGeneratorMock) GenerateCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
