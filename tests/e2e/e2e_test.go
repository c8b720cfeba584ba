//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moe-backend/internal/adapter/postgres/testhelper"
)

// TestE2E_LiveEndpoint verifies the /live liveness endpoint returns 200 OK.
func TestE2E_LiveEndpoint(t *testing.T) {
	ts := setupTestServer(t, serverOptions{})

	status, body := ts.do(t, http.MethodGet, "/live", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

// TestE2E_HealthEndpoint verifies the /health endpoint returns 200 with
// version and database component status.
func TestE2E_HealthEndpoint(t *testing.T) {
	ts := setupTestServer(t, serverOptions{})

	status, body := ts.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok, "expected components object")

	db, ok := components["database"].(map[string]any)
	require.True(t, ok, "expected database component")
	assert.Equal(t, "ok", db["status"])

	ai, ok := components["ai"].(map[string]any)
	require.True(t, ok, "expected ai component")
	assert.Equal(t, "disabled", ai["status"])
	assert.Equal(t, []any{"dictionary", "fallback"}, body["tiers"])
}

// TestE2E_LearnWord_FromDictionary covers the "cat" scenario end to end.
func TestE2E_LearnWord_FromDictionary(t *testing.T) {
	ts := setupTestServer(t, serverOptions{})
	student := testhelper.UniqueStudentID()

	status, result := ts.learn(t, "Cat", student)
	require.Equal(t, http.StatusOK, status, "body: %v", result)

	wd := wordDetails(t, result)
	assert.Equal(t, "cat", wd["word"])
	assert.Equal(t, "easy", wd["difficulty"])
	assert.Equal(t, "dictionary", wd["source"])
	assert.Equal(t, "/kæt/", wd["pronunciation"])
	assert.Equal(t, "https://audio.example/cat.mp3", wd["audioUrl"])
	assert.Equal(t, "The cat purred on my lap.", wd["example"])
	assert.ElementsMatch(t, []any{"kitty", "feline"}, wd["relatedWords"])
	assert.EqualValues(t, 1, wd["timesReviewed"])
	assert.Equal(t, false, wd["alreadyMastered"])

	assert.Equal(t, 1, testhelper.CountActivity(t, ts.Pool, student))
	assert.Equal(t, 1, testhelper.CountSessions(t, ts.Pool, student))
}

// TestE2E_LearnWord_UnknownWordUsesFallback verifies that a word the
// dictionary does not know still resolves when no AI key is configured.
func TestE2E_LearnWord_UnknownWordUsesFallback(t *testing.T) {
	ts := setupTestServer(t, serverOptions{})

	status, result := ts.learn(t, "elephant", testhelper.UniqueStudentID())
	require.Equal(t, http.StatusOK, status)

	wd := wordDetails(t, result)
	assert.Equal(t, "elephant", wd["word"])
	assert.Equal(t, "fallback", wd["source"])
	assert.Equal(t, "e-le-phant", wd["pronunciation"])
	assert.Equal(t, "advanced", wd["difficulty"])
}

// TestE2E_LearnWord_Validation covers the 400 responses.
func TestE2E_LearnWord_Validation(t *testing.T) {
	ts := setupTestServer(t, serverOptions{})

	status, result := ts.learn(t, "", "s1")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Word cannot be empty", result["error"])

	status, result = ts.do(t, http.MethodPost, "/learn-word", map[string]string{"word": "cat"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Word and studentId are required", result["error"])

	status, result = ts.do(t, http.MethodPatch, "/learn-word", map[string]string{"word": "cat", "studentId": "s1"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Word, studentId and outcome are required", result["error"])
}

// TestE2E_LearnWord_ProgressLifecycle walks one student through learning,
// mastering and relearning a word.
func TestE2E_LearnWord_ProgressLifecycle(t *testing.T) {
	ts := setupTestServer(t, serverOptions{})
	student := testhelper.UniqueStudentID()

	// 1. Review before learning is a 404.
	status, result := ts.review(t, "cat", student, "mastered")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Word not found for that student", result["error"])

	// 2. Learn twice: counter reaches 2.
	status, _ = ts.learn(t, "cat", student)
	require.Equal(t, http.StatusOK, status)
	status, result = ts.learn(t, "cat", student)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, wordDetails(t, result)["timesReviewed"])

	// 3. Master it.
	status, result = ts.review(t, "CAT", student, "mastered")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, result["success"])

	// 4. A later "learning" outcome never downgrades mastery.
	status, _ = ts.review(t, "cat", student, "learning")
	require.Equal(t, http.StatusOK, status)

	status, result = ts.learn(t, "cat", student)
	require.Equal(t, http.StatusOK, status)
	wd := wordDetails(t, result)
	assert.EqualValues(t, 5, wd["timesReviewed"])
	assert.Equal(t, true, wd["alreadyMastered"])

	// 5. Dashboard listing.
	status, result = ts.do(t, http.MethodGet, "/students/"+student+"/words", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, result["total"])
	words, ok := result["words"].([]any)
	require.True(t, ok)
	require.Len(t, words, 1)
	assert.Equal(t, true, words[0].(map[string]any)["mastered"])

	// 3 learns + 2 reviews.
	assert.Equal(t, 5, testhelper.CountActivity(t, ts.Pool, student))
}

// TestE2E_AuthRequired verifies token checks when auth is enabled.
func TestE2E_AuthRequired(t *testing.T) {
	ts := setupTestServer(t, serverOptions{requireAuth: true})
	student := uuid.New()
	body := map[string]string{"word": "cat", "studentId": student.String()}

	status, _ := ts.do(t, http.MethodPost, "/learn-word", body, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = ts.do(t, http.MethodPost, "/learn-word", body, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, result := ts.do(t, http.MethodPost, "/learn-word", body, signTestToken(t, student, "authenticated"))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cat", wordDetails(t, result)["word"])

	status, result = ts.do(t, http.MethodPost, "/learn-word", body, signTestToken(t, uuid.New(), "authenticated"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You can only use your own word list", result["error"])

	list := "/students/" + student.String() + "/words"
	status, _ = ts.do(t, http.MethodGet, list, nil, signTestToken(t, uuid.New(), "service_role"))
	assert.Equal(t, http.StatusOK, status)

	status, _ = ts.do(t, http.MethodGet, "/live", nil, "")
	assert.Equal(t, http.StatusOK, status)
}
