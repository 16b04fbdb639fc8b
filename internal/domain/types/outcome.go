package types

// ValidationResult maps each invalid field to a human-readable message.
// An empty result means the draft is valid.
type ValidationResult map[Field]string

// Valid reports whether there are no field errors.
func (r ValidationResult) Valid() bool { return len(r) == 0 }

// Has reports whether f has an error.
func (r ValidationResult) Has(f Field) bool {
	_, ok := r[f]
	return ok
}

// SubmissionOutcome is the user-facing result of the last submission attempt.
// At most one of Success and Failure is set.
type SubmissionOutcome struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
}

// Succeeded reports whether the outcome carries a confirmation message.
func (o SubmissionOutcome) Succeeded() bool { return o.Success != "" }

// Failed reports whether the outcome carries a failure message.
func (o SubmissionOutcome) Failed() bool { return o.Failure != "" }

// IsZero reports whether no attempt result is recorded.
func (o SubmissionOutcome) IsZero() bool { return o.Success == "" && o.Failure == "" }
