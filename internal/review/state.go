package review

import (
	"github.com/TheCodingDen/projects-bot/internal/db/models"
)

// Operation names are embedded in InvalidStateTransitionError messages,
// which are shown to voters directly.
const (
	OperationVote        = "vote on"
	OperationPause       = "pause"
	OperationUnpause     = "unpause"
	OperationForceReject = "force-reject"
	OperationRevalidate  = "revalidate"
	OperationEdit        = "edit"
	OperationEditAuthor  = "edit the author of"
)

// legalTransitions enumerates every edge of the submission lifecycle.
// RAW -> ERROR | WARNING | PROCESSING, PROCESSING <-> PAUSED,
// WARNING/ERROR are recoverable, ACCEPTED/DENIED are terminal.
var legalTransitions = map[models.SubmissionState][]models.SubmissionState{
	models.SubmissionStateRaw: {
		models.SubmissionStateError,
		models.SubmissionStateWarning,
		models.SubmissionStateProcessing,
	},
	models.SubmissionStateWarning: {
		models.SubmissionStateProcessing,
		models.SubmissionStateDenied,
	},
	models.SubmissionStateError: {
		models.SubmissionStateProcessing,
		models.SubmissionStateDenied,
	},
	models.SubmissionStateProcessing: {
		models.SubmissionStatePaused,
		models.SubmissionStateAccepted,
		models.SubmissionStateDenied,
	},
	models.SubmissionStatePaused: {
		models.SubmissionStateProcessing,
		models.SubmissionStateDenied,
	},
}

// Transition moves the submission to the requested state after checking the
// edge is legal. It fails fast with no mutation otherwise.
func Transition(submission *models.Submission, to models.SubmissionState, operation string) error {
	for _, legal := range legalTransitions[submission.State] {
		if legal == to {
			submission.State = to
			return nil
		}
	}

	return &InvalidStateTransitionError{State: submission.State, Operation: operation}
}

// EnsureVotable checks that UP/DOWN votes are currently permitted.
func EnsureVotable(submission *models.Submission) error {
	if submission.State != models.SubmissionStateProcessing {
		return &InvalidStateTransitionError{State: submission.State, Operation: OperationVote}
	}
	return nil
}

// EnsurePausable checks that the submission may be paused for voting.
func EnsurePausable(submission *models.Submission) error {
	if submission.State != models.SubmissionStateProcessing {
		return &InvalidStateTransitionError{State: submission.State, Operation: OperationPause}
	}
	return nil
}

// EnsureUnpausable checks that the submission may be resumed for voting.
func EnsureUnpausable(submission *models.Submission) error {
	if submission.State != models.SubmissionStatePaused {
		return &InvalidStateTransitionError{State: submission.State, Operation: OperationUnpause}
	}
	return nil
}

// EnsureForceRejectable checks that an instant rejection with the given
// template is permitted. Errored submissions only accept the restricted
// subset of reasons that do not require resolved submission data.
func EnsureForceRejectable(submission *models.Submission, template RejectionTemplate) error {
	switch submission.State {
	case models.SubmissionStateProcessing, models.SubmissionStatePaused, models.SubmissionStateWarning:
		return nil
	case models.SubmissionStateError:
		if template.AllowedFromError {
			return nil
		}
	}

	return &InvalidStateTransitionError{State: submission.State, Operation: OperationForceReject}
}

// EnsureEditable checks that submission details may still be changed.
// Completed records are immutable outside the administrative path.
func EnsureEditable(submission *models.Submission) error {
	if submission.State.IsTerminal() {
		return &InvalidStateTransitionError{State: submission.State, Operation: OperationEdit}
	}
	return nil
}

// EnsureRevalidatable checks that warnings/errors can be re-checked.
func EnsureRevalidatable(submission *models.Submission) error {
	if !submission.State.IsPending() {
		return &InvalidStateTransitionError{State: submission.State, Operation: OperationRevalidate}
	}
	return nil
}
