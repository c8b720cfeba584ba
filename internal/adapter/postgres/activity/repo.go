// Package activity stores the word activity log and coarse study sessions.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	postgres "github.com/heartmarshall/moe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moe-backend/internal/domain"
)

// Repo appends activity rows. It is write-only.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// AppendActivity inserts one word_activity_log row. Payload is stored as JSON.
func (r *Repo) AppendActivity(ctx context.Context, entry domain.ActivityEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("encode activity payload: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert("word_activity_log").
		Columns("student_id", "word", "status", "payload", "created_at").
		Values(entry.StudentID, entry.Word, entry.Status.String(), payload, entry.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert word_activity_log: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "word_activity", entry.StudentID+"/"+entry.Word)
	}
	return nil
}

// AppendSession inserts one study_sessions row.
func (r *Repo) AppendSession(ctx context.Context, s domain.StudySession) error {
	query, args, err := postgres.Builder.
		Insert("study_sessions").
		Columns("student_id", "activity", "duration_minutes", "questions_answered", "correct_answers", "created_at").
		Values(s.StudentID, s.Activity, s.DurationMinutes, s.QuestionsAnswered, s.CorrectAnswers, s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert study_session: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "study_session", s.StudentID)
	}
	return nil
}
