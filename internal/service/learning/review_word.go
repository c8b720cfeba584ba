package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// ReviewWord records a review outcome for a word the student already has.
// Only the "mastered" outcome sets the mastery flag; nothing clears it.
// Returns an error wrapping domain.ErrNotFound if the student never learned the word.
func (s *Service) ReviewWord(ctx context.Context, input ReviewWordInput) (*domain.LearnedWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word := domain.NormalizeText(input.Word)
	outcome := domain.ReviewOutcome(input.Outcome)

	learned, err := s.words.RecordReview(ctx, input.StudentID, word, outcome.IsMastered())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "learn-word: review update failed",
				slog.String("student_id", input.StudentID),
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("record review: %w", err)
	}

	s.recordActivity(ctx, input.StudentID, word, outcome, map[string]any{
		"outcome":       outcome.String(),
		"timesReviewed": learned.TimesReviewed,
		"mastered":      learned.Mastered,
	})

	s.log.InfoContext(ctx, "word reviewed",
		slog.String("student_id", input.StudentID),
		slog.String("word", word),
		slog.String("outcome", outcome.String()),
		slog.Bool("mastered", learned.Mastered),
	)

	return learned, nil
}
