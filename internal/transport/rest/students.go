package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/service/learning"
)

type learnedWordResponse struct {
	Word           string              `json:"word"`
	TimesReviewed  int                 `json:"timesReviewed"`
	Mastered       bool                `json:"mastered"`
	FirstLearnedAt time.Time           `json:"firstLearnedAt"`
	LastReviewedAt time.Time           `json:"lastReviewedAt"`
	Details        *domain.WordDetails `json:"details,omitempty"`
}

type listWordsResponse struct {
	Words []learnedWordResponse `json:"words"`
	Total int                   `json:"total"`
}

// ListWords handles GET /students/{studentId}/words.
func (h *LearnWordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("studentId")
	if strings.TrimSpace(studentID) == "" {
		writeError(w, http.StatusBadRequest, msgStudentRequired)
		return
	}
	if !h.canActFor(r.Context(), studentID) {
		writeError(w, http.StatusForbidden, msgOtherStudent)
		return
	}

	limit, errL := queryInt(r, "limit")
	offset, errO := queryInt(r, "offset")
	if errL != nil || errO != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPaging)
		return
	}

	words, total, err := h.svc.ListWords(r.Context(), learning.ListWordsInput{
		StudentID: studentID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, msgInvalidPaging)
			return
		}
		h.log.ErrorContext(r.Context(), "learn-word: list failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	resp := listWordsResponse{Words: make([]learnedWordResponse, len(words)), Total: total}
	for i, lw := range words {
		resp.Words[i] = learnedWordResponse{
			Word:           lw.Word,
			TimesReviewed:  lw.TimesReviewed,
			Mastered:       lw.Mastered,
			FirstLearnedAt: lw.FirstLearnedAt,
			LastReviewedAt: lw.LastReviewedAt,
			Details:        lw.Details,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// queryInt parses an optional integer query parameter. Missing means zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
