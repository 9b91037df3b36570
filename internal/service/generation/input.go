package generation

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// GenerateInput holds source text and an optional card count.
type GenerateInput struct {
	Text  string
	Count *int
}

// Validate checks the text and the count against maxCount.
func (i GenerateInput) Validate(maxCount int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if fe, ok := checkCount(i.Count, maxCount); !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TranscribeInput holds an uploaded recording and an optional card count.
type TranscribeInput struct {
	Filename string
	Audio    io.Reader
	Count    *int
}

// Validate checks the upload and the count against maxCount.
func (i TranscribeInput) Validate(maxCount int) error {
	var errs []domain.FieldError

	if i.Audio == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if fe, ok := checkCount(i.Count, maxCount); !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkCount(count *int, maxCount int) (domain.FieldError, bool) {
	if count == nil {
		return domain.FieldError{}, true
	}
	if *count < 1 || *count > maxCount {
		return domain.FieldError{
			Field:   "numberOfFlashCards",
			Message: fmt.Sprintf("must be between 1 and %d", maxCount),
		}, false
	}
	return domain.FieldError{}, true
}
