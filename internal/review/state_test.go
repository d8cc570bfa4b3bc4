package review

import (
	"testing"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/stretchr/testify/assert"
)

func TestTransition_LegalEdgeMutatesState(t *testing.T) {
	submission := &models.Submission{State: models.SubmissionStateProcessing}

	err := Transition(submission, models.SubmissionStatePaused, OperationPause)

	assert.NoError(t, err)
	assert.Equal(t, models.SubmissionStatePaused, submission.State)
}

func TestTransition_IllegalEdgeFailsWithoutMutation(t *testing.T) {
	submission := &models.Submission{State: models.SubmissionStateAccepted}

	err := Transition(submission, models.SubmissionStateProcessing, OperationVote)

	var invalid *InvalidStateTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.SubmissionStateAccepted, invalid.State)
	assert.Equal(t, models.SubmissionStateAccepted, submission.State)
}

func TestTransition_TerminalStatesAreAbsorbing(t *testing.T) {
	for _, terminal := range []models.SubmissionState{
		models.SubmissionStateAccepted,
		models.SubmissionStateDenied,
	} {
		submission := &models.Submission{State: terminal}

		err := Transition(submission, models.SubmissionStatePaused, OperationPause)

		assert.Error(t, err)
		assert.Equal(t, terminal, submission.State)
	}
}

func TestEnsureVotable_OnlyProcessing(t *testing.T) {
	assert.NoError(t, EnsureVotable(&models.Submission{State: models.SubmissionStateProcessing}))

	for _, state := range []models.SubmissionState{
		models.SubmissionStateRaw,
		models.SubmissionStateWarning,
		models.SubmissionStateError,
		models.SubmissionStatePaused,
		models.SubmissionStateAccepted,
		models.SubmissionStateDenied,
	} {
		err := EnsureVotable(&models.Submission{State: state})
		assert.Error(t, err, "state %s should not be votable", state)
	}
}

func TestEnsureUnpausable_OnlyPaused(t *testing.T) {
	assert.NoError(t, EnsureUnpausable(&models.Submission{State: models.SubmissionStatePaused}))
	assert.Error(t, EnsureUnpausable(&models.Submission{State: models.SubmissionStateProcessing}))
}

func TestEnsureForceRejectable_AllowsReviewStates(t *testing.T) {
	template := RejectionTemplate{Key: "plagiarism"}

	for _, state := range []models.SubmissionState{
		models.SubmissionStateProcessing,
		models.SubmissionStatePaused,
		models.SubmissionStateWarning,
	} {
		err := EnsureForceRejectable(&models.Submission{State: state}, template)
		assert.NoError(t, err, "state %s should be force-rejectable", state)
	}
}

func TestEnsureForceRejectable_ErrorStateNeedsRestrictedReason(t *testing.T) {
	submission := &models.Submission{State: models.SubmissionStateError}

	err := EnsureForceRejectable(submission, RejectionTemplate{Key: "plagiarism"})
	assert.Error(t, err)

	err = EnsureForceRejectable(submission, RejectionTemplate{Key: "invalid-id", AllowedFromError: true})
	assert.NoError(t, err)
}

func TestEnsureForceRejectable_TerminalStatesRejected(t *testing.T) {
	template := RejectionTemplate{Key: "plagiarism"}

	for _, state := range []models.SubmissionState{
		models.SubmissionStateAccepted,
		models.SubmissionStateDenied,
	} {
		err := EnsureForceRejectable(&models.Submission{State: state}, template)
		assert.Error(t, err)
	}
}

func TestEnsureRevalidatable_OnlyPendingStates(t *testing.T) {
	assert.NoError(t, EnsureRevalidatable(&models.Submission{State: models.SubmissionStateWarning}))
	assert.NoError(t, EnsureRevalidatable(&models.Submission{State: models.SubmissionStateError}))
	assert.Error(t, EnsureRevalidatable(&models.Submission{State: models.SubmissionStateProcessing}))
}
