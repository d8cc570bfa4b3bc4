package review

import (
	"errors"
	"fmt"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
)

var (
	// ErrMissingDraft is returned when a downvote or rejection is attempted
	// without a current draft on the submission.
	ErrMissingDraft = errors.New("a rejection draft is required before this submission can be rejected")

	// ErrStaffOnly is returned when a non-staff voter attempts a staff-only
	// operation such as pausing.
	ErrStaffOnly = errors.New("only staff may perform this operation")

	// ErrUnreachable marks an internal invariant violation. It should never
	// surface in correct code and is reported as a defect when it does.
	ErrUnreachable = errors.New("internal invariant violation")
)

// InvalidStateTransitionError is returned when an operation is attempted
// against a submission state that forbids it. No mutation has occurred.
type InvalidStateTransitionError struct {
	State     models.SubmissionState
	Operation string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a submission in the %s state", e.Operation, e.State)
}

// ConflictingVoteError is returned when a voter attempts to hold an upvote
// and a downvote on the same submission at the same time.
type ConflictingVoteError struct {
	VoterID   string
	Existing  models.VoteType
	Requested models.VoteType
}

func (e *ConflictingVoteError) Error() string {
	return fmt.Sprintf("you already hold a %s vote, remove it before casting a %s vote",
		e.Existing, e.Requested)
}

// ExternalOperationError wraps a persistence or presentation failure that
// occurred mid-sequence. Where the executor defines a compensation, it has
// already run by the time this error is returned.
type ExternalOperationError struct {
	Step string
	Err  error
}

func (e *ExternalOperationError) Error() string {
	return fmt.Sprintf("external operation %q failed: %v", e.Step, e.Err)
}

func (e *ExternalOperationError) Unwrap() error {
	return e.Err
}

// TemplateNotFoundError is returned when a rejection reason key has no
// configured template. This is a client or configuration error, not a
// business-logic failure.
type TemplateNotFoundError struct {
	Key string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no rejection template configured for reason %q", e.Key)
}
