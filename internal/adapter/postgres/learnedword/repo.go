// Package learnedword implements the per-student learned-words repository using PostgreSQL.
package learnedword

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/moe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moe-backend/internal/domain"
)

const (
	table  = "learned_words"
	entity = "learned_word"
)

var columns = []string{
	"id", "student_id", "word", "times_reviewed", "mastered",
	"details", "first_learned_at", "last_reviewed_at",
}

// Repo provides learned-word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new learned-word repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert records that studentID looked up details.Word. A new row starts with
// times_reviewed = 1; an existing row gets times_reviewed + 1, a fresh
// last_reviewed_at and the latest details. mastered is never touched here.
func (r *Repo) Upsert(ctx context.Context, studentID string, details domain.WordDetails) (*domain.LearnedWord, error) {
	payload, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode word details: %w", err)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("student_id", "word", "times_reviewed", "mastered", "details").
		Values(studentID, details.Word, 1, false, payload).
		Suffix(`ON CONFLICT (student_id, word) DO UPDATE SET
			times_reviewed = learned_words.times_reviewed + 1,
			last_reviewed_at = now(),
			details = EXCLUDED.details
		RETURNING ` + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert learned_word: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	word, err := scanLearnedWord(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, key(studentID, details.Word))
	}
	return word, nil
}

// RecordReview increments the review counter of an existing row and sets
// mastered when requested. A mastered row is never downgraded.
// Returns domain.ErrNotFound if the student has no row for word.
func (r *Repo) RecordReview(ctx context.Context, studentID, word string, mastered bool) (*domain.LearnedWord, error) {
	var result *domain.LearnedWord

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		lockSQL, args, err := postgres.Builder.
			Select("id").
			From(table).
			Where(sq.Eq{"student_id": studentID, "word": word}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("build lock learned_word: %w", err)
		}

		var id uuid.UUID
		if err := q.QueryRow(ctx, lockSQL, args...).Scan(&id); err != nil {
			return postgres.MapError(err, entity, key(studentID, word))
		}

		updateSQL, args, err := postgres.Builder.
			Update(table).
			Set("times_reviewed", sq.Expr("times_reviewed + 1")).
			Set("mastered", sq.Expr("mastered OR ?", mastered)).
			Set("last_reviewed_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING " + returning()).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update learned_word: %w", err)
		}

		result, err = scanLearnedWord(q.QueryRow(ctx, updateSQL, args...))
		if err != nil {
			return postgres.MapError(err, entity, key(studentID, word))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByStudent returns a student's words, most recently reviewed first,
// together with the total count.
func (r *Repo) ListByStudent(ctx context.Context, studentID string, limit, offset int) ([]*domain.LearnedWord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, args, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count learned_words: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count learned_words: %w", err)
	}

	listSQL, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("last_reviewed_at DESC", "word").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list learned_words: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list learned_words: %w", err)
	}

	words, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.LearnedWord, error) {
		return scanLearnedWord(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan learned_words: %w", err)
	}

	return words, total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func returning() string {
	return strings.Join(columns, ", ")
}

func key(studentID, word string) string {
	return studentID + "/" + word
}

// scanLearnedWord reads one row in columns order.
func scanLearnedWord(row pgx.Row) (*domain.LearnedWord, error) {
	var (
		w   domain.LearnedWord
		raw []byte
	)
	if err := row.Scan(
		&w.ID, &w.StudentID, &w.Word, &w.TimesReviewed, &w.Mastered,
		&raw, &w.FirstLearnedAt, &w.LastReviewedAt,
	); err != nil {
		return nil, err
	}

	if len(raw) > 0 {
		var details domain.WordDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return nil, fmt.Errorf("decode word details: %w", err)
		}
		w.Details = &details
	}

	return &w, nil
}
