package interfaces

import (
	"context"

	domaintypes "pizzaorder/internal/domain/types"
)

// Validator evaluates the order rules against a draft.
type Validator interface {
	Validate(draft domaintypes.OrderDraft) domaintypes.ValidationResult
	SubmitEnabled(draft domaintypes.OrderDraft) bool
}

// Submitter sends a validated draft and reports the user-facing outcome.
// A non-nil error always comes with a Failure outcome.
type Submitter interface {
	Submit(ctx context.Context, draft domaintypes.OrderDraft) (domaintypes.SubmissionOutcome, error)
}
