package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/service/learning"
)

var _ learningService = &learningServiceMock{}

type learningServiceMock struct {
	LearnWordFunc  func(ctx context.Context, input learning.LearnWordInput) (*learning.LearnWordResult, error)
	ReviewWordFunc func(ctx context.Context, input learning.ReviewWordInput) (*domain.LearnedWord, error)
	ListWordsFunc  func(ctx context.Context, input learning.ListWordsInput) ([]*domain.LearnedWord, int, error)

	calls struct {
		LearnWord  []learning.LearnWordInput
		ReviewWord []learning.ReviewWordInput
		ListWords  []learning.ListWordsInput
	}
	mu sync.RWMutex
}

func (m *learningServiceMock) LearnWord(ctx context.Context, input learning.LearnWordInput) (*learning.LearnWordResult, error) {
	if m.LearnWordFunc == nil {
		panic("learningServiceMock.LearnWordFunc: method is nil but learningService.LearnWord was just called")
	}
	m.mu.Lock()
	m.calls.LearnWord = append(m.calls.LearnWord, input)
	m.mu.Unlock()
	return m.LearnWordFunc(ctx, input)
}

func (m *learningServiceMock) LearnWordCalls() []learning.LearnWordInput {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.LearnWord
}

func (m *learningServiceMock) ReviewWord(ctx context.Context, input learning.ReviewWordInput) (*domain.LearnedWord, error) {
	if m.ReviewWordFunc == nil {
		panic("learningServiceMock.ReviewWordFunc: method is nil but learningService.ReviewWord was just called")
	}
	m.mu.Lock()
	m.calls.ReviewWord = append(m.calls.ReviewWord, input)
	m.mu.Unlock()
	return m.ReviewWordFunc(ctx, input)
}

func (m *learningServiceMock) ReviewWordCalls() []learning.ReviewWordInput {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.ReviewWord
}

func (m *learningServiceMock) ListWords(ctx context.Context, input learning.ListWordsInput) ([]*domain.LearnedWord, int, error) {
	if m.ListWordsFunc == nil {
		panic("learningServiceMock.ListWordsFunc: method is nil but learningService.ListWords was just called")
	}
	m.mu.Lock()
	m.calls.ListWords = append(m.calls.ListWords, input)
	m.mu.Unlock()
	return m.ListWordsFunc(ctx, input)
}

func (m *learningServiceMock) ListWordsCalls() []learning.ListWordsInput {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.ListWords
}
