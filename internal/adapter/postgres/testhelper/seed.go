package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueStudentID returns a student id that no other test uses, so tests
// sharing the container never see each other's rows.
func UniqueStudentID() string {
	return "student-" + uuid.New().String()[:8]
}

// CountActivity returns the number of word_activity_log rows for a student.
func CountActivity(t *testing.T, pool *pgxpool.Pool, studentID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM word_activity_log WHERE student_id = $1`, studentID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count activity: %v", err)
	}
	return n
}

// CountSessions returns the number of study_sessions rows for a student.
func CountSessions(t *testing.T, pool *pgxpool.Pool, studentID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM study_sessions WHERE student_id = $1`, studentID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count sessions: %v", err)
	}
	return n
}
