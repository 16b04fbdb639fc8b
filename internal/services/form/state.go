package form

import (
	"context"

	"pizzaorder/internal/domain"
)

// State is the form state holder.
type State struct {
	validator domain.Validator
	draft     domain.OrderDraft
	errors    domain.ValidationResult
	inFlight  bool
	outcome   domain.SubmissionOutcome
}

// New returns an empty form validated by v.
func New(v domain.Validator) *State {
	s := &State{validator: v}
	s.revalidate()
	return s
}

// Draft returns a copy of the current draft.
func (s *State) Draft() domain.OrderDraft { return s.draft.Clone() }

// Errors returns the validation result for the current draft.
func (s *State) Errors() domain.ValidationResult {
	out := make(domain.ValidationResult, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Outcome returns the result of the last submission attempt.
func (s *State) Outcome() domain.SubmissionOutcome { return s.outcome }

// InFlight reports whether a submission is awaiting its result.
func (s *State) InFlight() bool { return s.inFlight }

// SubmitEnabled reports whether the name and size are within bounds.
func (s *State) SubmitEnabled() bool { return s.validator.SubmitEnabled(s.draft) }

// CanSubmit reports whether the submit control is active.
func (s *State) CanSubmit() bool { return s.SubmitEnabled() && !s.inFlight }

// SetFullName replaces the name as typed; trimming happens on validation
// and submission.
func (s *State) SetFullName(name string) {
	s.draft.FullName = name
	s.revalidate()
}

// SetSize replaces the size selection.
func (s *State) SetSize(size domain.Size) {
	s.draft.Size = size
	s.revalidate()
}

// SetTopping adds id when checked and removes it otherwise. Repeating the
// same call leaves the selection unchanged.
func (s *State) SetTopping(id string, checked bool) {
	has := s.draft.HasTopping(id)
	switch {
	case checked && !has:
		s.draft.Toppings = append(s.draft.Toppings, id)
	case !checked && has:
		kept := s.draft.Toppings[:0:0]
		for _, t := range s.draft.Toppings {
			if t != id {
				kept = append(kept, t)
			}
		}
		s.draft.Toppings = kept
	default:
		return
	}
	s.revalidate()
}

// ToggleTopping flips the membership of id.
func (s *State) ToggleTopping(id string) {
	s.SetTopping(id, !s.draft.HasTopping(id))
}

// Reset empties the draft. The outcome and in-flight flag are kept.
func (s *State) Reset() {
	s.draft = domain.OrderDraft{}
	s.revalidate()
}

// BeginSubmit starts a submission attempt: the previous outcome is cleared
// and the draft re-validated. On success the form is marked in flight and a
// snapshot of the draft is returned for the submitter.
func (s *State) BeginSubmit() (domain.OrderDraft, error) {
	if s.inFlight {
		return domain.OrderDraft{}, domain.ErrSubmissionInFlight
	}
	s.outcome = domain.SubmissionOutcome{}
	s.revalidate()
	if !s.errors.Valid() {
		return domain.OrderDraft{}, &domain.FieldValidationError{Fields: s.Errors()}
	}
	s.inFlight = true
	return s.draft.Clone(), nil
}

// FinishSubmit records the result of the attempt started by BeginSubmit.
// The draft is reset only when the submission succeeded.
func (s *State) FinishSubmit(outcome domain.SubmissionOutcome, err error) {
	s.inFlight = false
	s.outcome = outcome
	if err == nil && outcome.Succeeded() {
		s.Reset()
	}
}

// Submit runs a whole attempt synchronously through sub.
func (s *State) Submit(ctx context.Context, sub domain.Submitter) (domain.SubmissionOutcome, error) {
	draft, err := s.BeginSubmit()
	if err != nil {
		return domain.SubmissionOutcome{}, err
	}
	outcome, err := sub.Submit(ctx, draft)
	s.FinishSubmit(outcome, err)
	return outcome, err
}

func (s *State) revalidate() {
	s.errors = s.validator.Validate(s.draft)
}
