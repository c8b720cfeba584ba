// Package learning implements the learn-word use cases: resolving a word for a
// student, recording review outcomes and listing what a student has learned.
package learning

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type wordResolver interface {
	Resolve(ctx context.Context, word string) (domain.WordDetails, error)
}

type learnedWordRepo interface {
	Upsert(ctx context.Context, studentID string, details domain.WordDetails) (*domain.LearnedWord, error)
	RecordReview(ctx context.Context, studentID, word string, mastered bool) (*domain.LearnedWord, error)
	ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*domain.LearnedWord, int, error)
}

type activitySink interface {
	AppendActivity(ctx context.Context, entry domain.ActivityEntry) error
	AppendSession(ctx context.Context, s domain.StudySession) error
}

// Service provides the learn-word operations.
type Service struct {
	resolver wordResolver
	words    learnedWordRepo
	activity activitySink
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new learning service. A nil activity sink disables
// activity logging.
func NewService(
	log *slog.Logger,
	resolver wordResolver,
	words learnedWordRepo,
	activity activitySink,
) *Service {
	if activity == nil {
		activity = NopSink{}
	}
	return &Service{
		resolver: resolver,
		words:    words,
		activity: activity,
		log:      log.With("service", "learning"),
		now:      time.Now,
	}
}
