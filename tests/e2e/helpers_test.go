//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moe-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/moe-backend/internal/adapter/postgres/learnedword"
	"github.com/heartmarshall/moe-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/moe-backend/internal/adapter/provider/freedict"
	authpkg "github.com/heartmarshall/moe-backend/internal/auth"
	"github.com/heartmarshall/moe-backend/internal/config"
	"github.com/heartmarshall/moe-backend/internal/service/learning"
	"github.com/heartmarshall/moe-backend/internal/service/lexicon"
	"github.com/heartmarshall/moe-backend/internal/transport/middleware"
	"github.com/heartmarshall/moe-backend/internal/transport/rest"
)

const testJWTSecret = "test-secret-at-least-32-chars-long!!"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

type serverOptions struct {
	requireAuth bool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Dictionary stub serving a tiny fixed vocabulary.
// ---------------------------------------------------------------------------

var stubEntries = map[string]string{
	"cat": `[{"word":"cat","phonetic":"/kæt/","phonetics":[{"text":"/kæt/","audio":"https://audio.example/cat.mp3"}],
		"meanings":[{"partOfSpeech":"noun","synonyms":["kitty"],"definitions":[
			{"definition":"A small domesticated carnivorous mammal with soft fur.","example":"The cat purred on my lap.","synonyms":["feline"]}]}]}]`,
}

func newDictionaryStub(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		word := strings.TrimPrefix(r.URL.Path, "/")
		body, ok := stubEntries[word]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper). The AI tier has no
// API key, so unknown words resolve to fallback records.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Resolver chain.
	dict := freedict.NewProviderWithURL(newDictionaryStub(t).URL, 2*time.Second, logger)
	resolver := lexicon.NewResolver(logger, dict, lexicon.NewAIEntryGenerator(nil, logger), lexicon.Timeouts{})

	// 4. Service.
	svc := learning.NewService(logger, resolver, learnedword.New(pool), activity.New(pool))

	// 5. Handlers.
	learnHandler := rest.NewLearnWordHandler(svc, logger, rest.WithStaffRoles("service_role"))
	healthHandler := rest.NewHealthHandler(pool, "test-version", rest.PipelineInfo{ActivityLog: true})

	api := http.NewServeMux()
	api.HandleFunc("POST /learn-word", learnHandler.Learn)
	api.HandleFunc("PATCH /learn-word", learnHandler.Review)
	api.HandleFunc("GET /students/{studentId}/words", learnHandler.ListWords)

	var apiHandler http.Handler = api
	if opts.requireAuth {
		verifier := authpkg.NewVerifier(config.AuthConfig{JWTSecret: testJWTSecret, Audience: "authenticated"})
		apiHandler = middleware.Auth(verifier, true)(api)
	}

	// 6. Mux.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("/", apiHandler)

	// 7. Middleware chain.
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (ts *testServer) learn(t *testing.T, word, studentID string) (int, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodPost, "/learn-word", map[string]string{"word": word, "studentId": studentID}, "")
}

func (ts *testServer) review(t *testing.T, word, studentID, outcome string) (int, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodPatch, "/learn-word",
		map[string]string{"word": word, "studentId": studentID, "outcome": outcome}, "")
}

func wordDetails(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	wd, ok := result["wordDetails"].(map[string]any)
	require.True(t, ok, "expected wordDetails object, got %v", result)
	return wd
}

// signTestToken issues a Supabase-shaped access token for the given user.
func signTestToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"aud":  "authenticated",
		"role": role,
		"exp":  time.Now().Add(10 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}
