package learning

import (
	"strings"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// LearnWordInput holds the parameters for looking up a word for a student.
type LearnWordInput struct {
	Word      string
	StudentID string
}

// Validate reports missing fields first, then a word that is only whitespace.
func (i LearnWordInput) Validate() error {
	var errs []domain.FieldError
	if i.Word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if strings.TrimSpace(i.StudentID) == "" {
		errs = append(errs, domain.FieldError{Field: "studentId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if strings.TrimSpace(i.Word) == "" {
		return domain.NewValidationError("word", "cannot be empty")
	}
	return nil
}

// ReviewWordInput holds a student's reported outcome for a word.
type ReviewWordInput struct {
	Word      string
	StudentID string
	Outcome   string
}

// Validate checks all fields and collects all errors.
func (i ReviewWordInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if strings.TrimSpace(i.StudentID) == "" {
		errs = append(errs, domain.FieldError{Field: "studentId", Message: "required"})
	}
	if strings.TrimSpace(i.Outcome) == "" {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListWordsInput holds the parameters for listing a student's words.
type ListWordsInput struct {
	StudentID string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListWordsInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.StudentID) == "" {
		errs = append(errs, domain.FieldError{Field: "studentId", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
