package learning

import (
	"context"
	"fmt"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// ListWords returns a page of the student's learned words and the total count.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) ([]*domain.LearnedWord, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	words, total, err := s.words.ListByStudent(ctx, input.StudentID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list learned words: %w", err)
	}

	return words, total, nil
}
