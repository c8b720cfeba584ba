package learning

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// NopSink discards activity. It is used when activity logging is disabled.
type NopSink struct{}

func (NopSink) AppendActivity(context.Context, domain.ActivityEntry) error { return nil }
func (NopSink) AppendSession(context.Context, domain.StudySession) error   { return nil }

// recordActivity appends the activity row and the study session. Failures are
// logged and dropped: the caller's response never depends on them.
func (s *Service) recordActivity(ctx context.Context, studentID, word string, outcome domain.ReviewOutcome, payload any) {
	now := s.now().UTC()

	err := s.activity.AppendActivity(ctx, domain.ActivityEntry{
		StudentID: studentID,
		Word:      word,
		Status:    outcome,
		Payload:   payload,
		CreatedAt: now,
	})
	if err != nil {
		s.log.WarnContext(ctx, "learn-word: activity log skipped",
			slog.String("student_id", studentID),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}

	if err := s.activity.AppendSession(ctx, domain.NewStudySession(studentID, outcome, now)); err != nil {
		s.log.WarnContext(ctx, "learn-word: study session skipped",
			slog.String("student_id", studentID),
			slog.String("error", err.Error()),
		)
	}
}
