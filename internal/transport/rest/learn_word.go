package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/service/learning"
	"github.com/heartmarshall/moe-backend/pkg/ctxutil"
)

// Messages shown to students. They are part of the API contract.
const (
	msgLearnRequired   = "Word and studentId are required"
	msgWordEmpty       = "Word cannot be empty"
	msgWordNotFound    = "Moe couldn't find that word yet. Let's try another one!"
	msgSaveFailed      = "Moe had trouble saving that word. Please try again."
	msgReviewRequired  = "Word, studentId and outcome are required"
	msgReviewNotFound  = "Word not found for that student"
	msgReviewFailed    = "Moe had trouble updating that word. Please try again."
	msgInvalidPaging   = "limit and offset must be non-negative integers"
	msgListFailed      = "Moe had trouble loading the words. Please try again."
	msgStudentRequired = "studentId is required"
	msgOtherStudent    = "You can only use your own word list"
)

type learningService interface {
	LearnWord(ctx context.Context, input learning.LearnWordInput) (*learning.LearnWordResult, error)
	ReviewWord(ctx context.Context, input learning.ReviewWordInput) (*domain.LearnedWord, error)
	ListWords(ctx context.Context, input learning.ListWordsInput) ([]*domain.LearnedWord, int, error)
}

// LearnWordHandler serves the learn-word endpoints.
type LearnWordHandler struct {
	svc        learningService
	log        *slog.Logger
	staffRoles []string
}

// HandlerOption configures a LearnWordHandler.
type HandlerOption func(*LearnWordHandler)

// WithStaffRoles lets callers whose token role is one of roles act for any
// student. Everyone else may only use the studentId equal to their user id.
func WithStaffRoles(roles ...string) HandlerOption {
	return func(h *LearnWordHandler) { h.staffRoles = roles }
}

// NewLearnWordHandler creates a LearnWordHandler.
func NewLearnWordHandler(svc learningService, logger *slog.Logger, opts ...HandlerOption) *LearnWordHandler {
	h := &LearnWordHandler{svc: svc, log: logger.With("handler", "learn_word")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// canActFor reports whether the caller may read or change studentID's words.
// Unauthenticated requests only get here when auth is disabled.
func (h *LearnWordHandler) canActFor(ctx context.Context, studentID string) bool {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return true
	}
	if lo.Contains(h.staffRoles, ctxutil.RoleFromCtx(ctx)) {
		return true
	}
	return strings.EqualFold(userID.String(), strings.TrimSpace(studentID))
}

// learnWordRequest keeps Word as a pointer so an absent word ("required")
// is told apart from a blank one ("cannot be empty").
type learnWordRequest struct {
	Word      *string `json:"word" validate:"required"`
	StudentID string  `json:"studentId" validate:"required"`
}

type reviewWordRequest struct {
	Word      string `json:"word" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	Outcome   string `json:"outcome" validate:"required"`
}

// learnedWordDetails flattens the word record and the student's progress
// into one JSON object.
type learnedWordDetails struct {
	domain.WordDetails
	TimesReviewed   int  `json:"timesReviewed"`
	AlreadyMastered bool `json:"alreadyMastered"`
}

type learnWordResponse struct {
	WordDetails learnedWordDetails `json:"wordDetails"`
}

// Learn handles POST /learn-word.
func (h *LearnWordHandler) Learn(w http.ResponseWriter, r *http.Request) {
	var req learnWordRequest
	if err := decodeAndValidate(w, r, &req); err != nil || strings.TrimSpace(req.StudentID) == "" {
		writeError(w, http.StatusBadRequest, msgLearnRequired)
		return
	}
	if !h.canActFor(r.Context(), req.StudentID) {
		writeError(w, http.StatusForbidden, msgOtherStudent)
		return
	}

	result, err := h.svc.LearnWord(r.Context(), learning.LearnWordInput{
		Word:      *req.Word,
		StudentID: req.StudentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, msgWordEmpty)
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, msgWordNotFound)
		default:
			h.log.ErrorContext(r.Context(), "learn-word: post failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, learnWordResponse{
		WordDetails: learnedWordDetails{
			WordDetails:     result.Details,
			TimesReviewed:   result.TimesReviewed,
			AlreadyMastered: result.AlreadyMastered,
		},
	})
}

// Review handles PATCH /learn-word.
func (h *LearnWordHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewWordRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgReviewRequired)
		return
	}
	if !h.canActFor(r.Context(), req.StudentID) {
		writeError(w, http.StatusForbidden, msgOtherStudent)
		return
	}

	_, err := h.svc.ReviewWord(r.Context(), learning.ReviewWordInput{
		Word:      req.Word,
		StudentID: req.StudentID,
		Outcome:   req.Outcome,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, msgReviewRequired)
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, msgReviewNotFound)
		default:
			h.log.ErrorContext(r.Context(), "learn-word: patch failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, msgReviewFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
