package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionInFlight is returned when a submit is attempted while another
// one has not finished.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// FieldValidationError carries every field error found in a draft.
type FieldValidationError struct {
	Fields ValidationResult
}

func (e *FieldValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range Fields() {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return "invalid order: " + strings.Join(parts, "; ")
}

// SubmissionError reports that the order could not be delivered or was
// rejected by the endpoint.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string { return "submit order: " + e.Err.Error() }

func (e *SubmissionError) Unwrap() error { return e.Err }

// IsValidation reports whether err carries field validation errors.
func IsValidation(err error) bool {
	var v *FieldValidationError
	return errors.As(err, &v)
}
