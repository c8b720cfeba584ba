package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewOutcome is the result a student reports after practicing a word.
// Only OutcomeMastered changes the mastery flag; any other value is recorded as-is.
type ReviewOutcome string

const (
	OutcomeMastered    ReviewOutcome = "mastered"
	OutcomeNeedsReview ReviewOutcome = "needs_review"
	// OutcomeLearning is recorded when a word is first looked up.
	OutcomeLearning ReviewOutcome = "learning"
)

func (o ReviewOutcome) String() string { return string(o) }

// IsMastered reports whether the outcome promotes the word to mastered.
func (o ReviewOutcome) IsMastered() bool { return o == OutcomeMastered }

// LearnedWord is a per-student record of a word, unique by (StudentID, Word).
// TimesReviewed only grows. Mastered goes from false to true once and stays there.
type LearnedWord struct {
	ID             uuid.UUID
	StudentID      string
	Word           string
	TimesReviewed  int
	Mastered       bool
	Details        *WordDetails
	FirstLearnedAt time.Time
	LastReviewedAt time.Time
}

// ActivityEntry is one row of the best-effort word activity log.
type ActivityEntry struct {
	StudentID string
	Word      string
	Status    ReviewOutcome
	Payload   any
	CreatedAt time.Time
}

// ActivityLearnWord is the study-session activity type for this feature.
const ActivityLearnWord = "learn_word"

// StudySession is a coarse practice record. Duration and counts are
// heuristics derived from the outcome, not measurements.
type StudySession struct {
	StudentID         string
	Activity          string
	DurationMinutes   int
	QuestionsAnswered int
	CorrectAnswers    int
	CreatedAt         time.Time
}

// NewStudySession builds the session record for an outcome:
// mastered counts as 3 minutes with one correct answer, anything else as 1 minute.
func NewStudySession(studentID string, outcome ReviewOutcome, now time.Time) StudySession {
	s := StudySession{
		StudentID:       studentID,
		Activity:        ActivityLearnWord,
		DurationMinutes: 1,
		CreatedAt:       now,
	}
	if outcome.IsMastered() {
		s.DurationMinutes = 3
		s.QuestionsAnswered = 1
		s.CorrectAnswers = 1
	}
	return s
}
