package learning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// LearnWordResult is the resolved record plus the student's progress on it.
type LearnWordResult struct {
	Details         domain.WordDetails
	TimesReviewed   int
	AlreadyMastered bool
}

// LearnWord resolves a word and records it for the student.
// Returns a ValidationError for bad input, an error wrapping domain.ErrNotFound
// when no source knows the word, and any other error on persistence failure.
func (s *Service) LearnWord(ctx context.Context, input LearnWordInput) (*LearnWordResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word := domain.NormalizeText(input.Word)

	details, err := s.resolver.Resolve(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("resolve word: %w", err)
	}

	learned, err := s.words.Upsert(ctx, input.StudentID, details)
	if err != nil {
		s.log.ErrorContext(ctx, "learn-word: save failed",
			slog.String("student_id", input.StudentID),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("save learned word: %w", err)
	}

	s.recordActivity(ctx, input.StudentID, details.Word, domain.OutcomeLearning, details)

	s.log.InfoContext(ctx, "word learned",
		slog.String("student_id", input.StudentID),
		slog.String("word", details.Word),
		slog.String("source", string(details.Source)),
		slog.Int("times_reviewed", learned.TimesReviewed),
	)

	return &LearnWordResult{
		Details:         details,
		TimesReviewed:   learned.TimesReviewed,
		AlreadyMastered: learned.Mastered,
	}, nil
}
