package review

import (
	"fmt"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"go.uber.org/zap"
)

// Outcome reports what a completed executor operation did.
type Outcome string

const (
	OutcomeVoteAdded     Outcome = "vote-add"
	OutcomeVoteRemoved   Outcome = "vote-remove"
	OutcomeAccepted      Outcome = "accept"
	OutcomeRejected      Outcome = "reject"
	OutcomeInstantReject Outcome = "instant-reject"
	OutcomePaused        Outcome = "pause"
	OutcomeUnpaused      Outcome = "unpause"
	OutcomeRevalidated   Outcome = "revalidate"
	OutcomeEdited        Outcome = "edit"

	// OutcomeCleanupNotRun signals a successful public force-rejection
	// whose thread/message cleanup was deliberately skipped; staff are
	// expected to clean up manually.
	OutcomeCleanupNotRun Outcome = "cleanup-not-run"
)

// Executor orchestrates accept, reject, pause, unpause and force-reject.
// Every operation acquires the submission's gate before state validation
// and holds it until persistence, including any compensation, completes.
type Executor struct {
	store        *Store
	presentation Presentation
	thresholds   Thresholds
	logger       *zap.SugaredLogger
}

func NewExecutor(store *Store, presentation Presentation, thresholds Thresholds, logger *zap.SugaredLogger) *Executor {
	return &Executor{
		store:        store,
		presentation: presentation,
		thresholds:   thresholds,
		logger:       logger,
	}
}

// Upvote applies an UP vote. A toggled duplicate removes the existing
// vote; a tipping vote delegates to the accept sequence.
func (e *Executor) Upvote(vote models.Vote) (Outcome, error) {
	if vote.Type != models.VoteTypeUp {
		return "", fmt.Errorf("%w: expected UP vote, got %s", ErrUnreachable, vote.Type)
	}

	release := e.store.Lock(vote.SubmissionID)
	defer release()

	submission, err := e.store.Fetch(vote.SubmissionID)
	if err != nil {
		return "", err
	}

	if err := EnsureVotable(submission); err != nil {
		return "", err
	}

	outcome, err := AddVote(submission, vote)
	if err != nil {
		return "", err
	}

	if outcome == LedgerRemoved {
		return e.finishRemoval(submission, vote)
	}

	if e.thresholds.Accepts(CountVotes(submission, models.VoteTypeUp, vote.Role), vote.Role) {
		return e.accept(submission, vote)
	}

	return e.finishAddition(submission, vote)
}

// Downvote applies a DOWN vote. The submission must carry a current draft
// before the vote is applied at all; a tipping vote delegates to the
// reject sequence.
func (e *Executor) Downvote(vote models.Vote) (Outcome, error) {
	if vote.Type != models.VoteTypeDown {
		return "", fmt.Errorf("%w: expected DOWN vote, got %s", ErrUnreachable, vote.Type)
	}

	release := e.store.Lock(vote.SubmissionID)
	defer release()

	submission, err := e.store.Fetch(vote.SubmissionID)
	if err != nil {
		return "", err
	}

	if err := EnsureVotable(submission); err != nil {
		return "", err
	}

	if submission.CurrentDraft() == nil {
		return "", ErrMissingDraft
	}

	outcome, err := AddVote(submission, vote)
	if err != nil {
		return "", err
	}

	if outcome == LedgerRemoved {
		return e.finishRemoval(submission, vote)
	}

	if e.thresholds.Rejects(CountVotes(submission, models.VoteTypeDown, vote.Role), vote.Role) {
		return e.reject(submission, vote)
	}

	return e.finishAddition(submission, vote)
}

// Pause suspends voting. Staff only.
func (e *Executor) Pause(vote models.Vote) (Outcome, error) {
	if vote.Role != models.VoteRoleStaff {
		return "", ErrStaffOnly
	}

	release := e.store.Lock(vote.SubmissionID)
	defer release()

	submission, err := e.store.Fetch(vote.SubmissionID)
	if err != nil {
		return "", err
	}

	if err := EnsurePausable(submission); err != nil {
		return "", err
	}

	if _, err := AddVote(submission, vote); err != nil {
		return "", err
	}

	if err := e.store.AppendVote(vote); err != nil {
		RemoveVote(submission, vote.VoterID, models.VoteTypePause)
		return "", err
	}

	if err := Transition(submission, models.SubmissionStatePaused, OperationPause); err != nil {
		return "", err
	}

	if err := e.store.Save(submission); err != nil {
		return "", err
	}

	e.updatePresentation(submission)
	e.logDecision(submission, fmt.Sprintf("<@%s> **PAUSED** the submission for voting.", vote.VoterID))

	return OutcomePaused, nil
}

// Unpause resumes voting and clears stored pause votes. Staff only.
func (e *Executor) Unpause(vote models.Vote) (Outcome, error) {
	if vote.Role != models.VoteRoleStaff {
		return "", ErrStaffOnly
	}

	release := e.store.Lock(vote.SubmissionID)
	defer release()

	submission, err := e.store.Fetch(vote.SubmissionID)
	if err != nil {
		return "", err
	}

	if err := EnsureUnpausable(submission); err != nil {
		return "", err
	}

	if err := e.store.ClearPauseVotes(submission.ID); err != nil {
		return "", err
	}

	submission.Votes = withoutVoteType(submission.Votes, models.VoteTypePause)

	if err := Transition(submission, models.SubmissionStateProcessing, OperationUnpause); err != nil {
		return "", err
	}

	if err := e.store.Save(submission); err != nil {
		return "", err
	}

	e.updatePresentation(submission)
	e.logDecision(submission, fmt.Sprintf("<@%s> **UNPAUSED** the submission for voting.", vote.VoterID))

	return OutcomeUnpaused, nil
}

// ForceReject instantly rejects a submission with a preset template,
// bypassing threshold logic entirely. Staff only.
func (e *Executor) ForceReject(actorID string, role models.VoteRole, submissionID string, template RejectionTemplate) (Outcome, error) {
	if role != models.VoteRoleStaff {
		return "", ErrStaffOnly
	}

	release := e.store.Lock(submissionID)
	defer release()

	submission, err := e.store.Fetch(submissionID)
	if err != nil {
		return "", err
	}

	if err := EnsureForceRejectable(submission, template); err != nil {
		return "", err
	}

	content := template.Execute(mention(submission.AuthorID), submission.Name)

	runCleanup := true

	switch template.Location {
	case RejectionLocationPublic:
		if err := e.presentation.SendPublicLog(content); err != nil {
			return "", &ExternalOperationError{Step: "send rejection message", Err: err}
		}
		runCleanup = false
	case RejectionLocationThread:
		if err := e.presentation.DeliverFeedback(submission, content); err != nil {
			return "", &ExternalOperationError{Step: "send rejection message", Err: err}
		}
	case RejectionLocationNone:
		// Silent rejection, nothing to deliver.
	default:
		return "", fmt.Errorf("%w: unknown rejection location %q", ErrUnreachable, template.Location)
	}

	e.logDecision(submission, fmt.Sprintf("<@%s> **FORCE-REJECTED** the submission.\nReason: **%s**", actorID, template.Label))

	if runCleanup {
		// Cleanup here is not externally visible to the rejection, treat
		// failures as best-effort.
		if err := e.presentation.ArchiveReviewThread(submission); err != nil {
			e.logger.Warnw("failed to archive review thread", "submission", submission.ID, "error", err)
		}
		if err := e.presentation.DeleteSubmissionMessage(submission); err != nil {
			e.logger.Warnw("failed to delete submission message", "submission", submission.ID, "error", err)
		}
	}

	if err := Transition(submission, models.SubmissionStateDenied, OperationForceReject); err != nil {
		return "", err
	}

	if err := e.store.Save(submission); err != nil {
		return "", err
	}

	if !runCleanup {
		return OutcomeCleanupNotRun, nil
	}

	return OutcomeInstantReject, nil
}

// EditField names a submission detail staff may change after intake.
type EditField string

const (
	EditFieldName        EditField = "name"
	EditFieldAuthor      EditField = "author"
	EditFieldDescription EditField = "description"
	EditFieldTech        EditField = "tech"
	EditFieldSourceLink  EditField = "source"
	EditFieldOtherLink   EditField = "other"
)

// Edit changes one submission detail. Staff only. The author may only be
// changed while the submission is stuck in ERROR, where the original id
// failed to resolve.
func (e *Executor) Edit(role models.VoteRole, submissionID string, field EditField, value string) (Outcome, error) {
	if role != models.VoteRoleStaff {
		return "", ErrStaffOnly
	}

	release := e.store.Lock(submissionID)
	defer release()

	submission, err := e.store.Fetch(submissionID)
	if err != nil {
		return "", err
	}

	if err := EnsureEditable(submission); err != nil {
		return "", err
	}

	switch field {
	case EditFieldName:
		submission.Name = value
	case EditFieldAuthor:
		if submission.State != models.SubmissionStateError {
			return "", &InvalidStateTransitionError{State: submission.State, Operation: OperationEditAuthor}
		}
		submission.AuthorID = value
	case EditFieldDescription:
		submission.Description = value
	case EditFieldTech:
		submission.Tech = value
	case EditFieldSourceLink:
		submission.SourceLink = value
	case EditFieldOtherLink:
		submission.OtherLink = value
	default:
		return "", fmt.Errorf("%w: unknown edit field %q", ErrUnreachable, field)
	}

	if err := e.store.Save(submission); err != nil {
		return "", err
	}

	e.updatePresentation(submission)

	return OutcomeEdited, nil
}

// Revalidate re-checks required submission data and clears the
// WARNING/ERROR state back to PROCESSING.
func (e *Executor) Revalidate(submissionID string) (Outcome, error) {
	release := e.store.Lock(submissionID)
	defer release()

	submission, err := e.store.Fetch(submissionID)
	if err != nil {
		return "", err
	}

	if err := EnsureRevalidatable(submission); err != nil {
		return "", err
	}

	if missing := missingRequiredData(submission); missing != "" {
		return "", &ExternalOperationError{
			Step: "revalidate",
			Err:  fmt.Errorf("submission is missing required data: %s", missing),
		}
	}

	if err := Transition(submission, models.SubmissionStateProcessing, OperationRevalidate); err != nil {
		return "", err
	}

	if err := e.store.Save(submission); err != nil {
		return "", err
	}

	e.updatePresentation(submission)

	return OutcomeRevalidated, nil
}

// accept runs the acceptance sequence. The tipping vote is already in the
// in-memory ledger; if the publish step fails, the vote is reverted and
// the error surfaced so the voter can retry.
func (e *Executor) accept(submission *models.Submission, vote models.Vote) (Outcome, error) {
	if err := e.store.AppendVote(vote); err != nil {
		RemoveVote(submission, vote.VoterID, vote.Type)
		return "", err
	}

	// Archival and origin-post removal are not visible to the acceptance
	// itself, failures are reported but do not block completion.
	if err := e.presentation.ArchiveReviewThread(submission); err != nil {
		e.logger.Warnw("failed to archive review thread", "submission", submission.ID, "error", err)
	}
	if err := e.presentation.DeleteSubmissionMessage(submission); err != nil {
		e.logger.Warnw("failed to delete submission message", "submission", submission.ID, "error", err)
	}

	if err := e.presentation.PublishShowcase(submission); err != nil {
		e.compensateVote(submission, vote)
		return "", &ExternalOperationError{Step: "publish showcase", Err: err}
	}

	e.logDecision(submission, fmt.Sprintf("<@%s> **ACCEPTED** the submission.", vote.VoterID))

	if err := Transition(submission, models.SubmissionStateAccepted, OperationVote); err != nil {
		return "", err
	}

	return OutcomeAccepted, e.store.Save(submission)
}

// reject runs the rejection sequence. The submission must never end up
// silently denied without a deliverable message: every step before the
// feedback delivery is acknowledged compensates the vote on failure.
func (e *Executor) reject(submission *models.Submission, vote models.Vote) (Outcome, error) {
	draft := submission.CurrentDraft()
	if draft == nil {
		RemoveVote(submission, vote.VoterID, vote.Type)
		return "", ErrMissingDraft
	}

	if err := e.store.AppendVote(vote); err != nil {
		RemoveVote(submission, vote.VoterID, vote.Type)
		return "", err
	}

	if err := e.presentation.UpdateSubmission(submission); err != nil {
		e.compensateVote(submission, vote)
		return "", &ExternalOperationError{Step: "update presentation", Err: err}
	}

	mentions, err := e.presentation.ReviewerMentions(submission)
	if err != nil {
		e.compensateVote(submission, vote)
		return "", &ExternalOperationError{Step: "resolve reviewers", Err: err}
	}

	if err := e.presentation.NotifyReviewers(submission, mentions); err != nil {
		e.compensateVote(submission, vote)
		return "", &ExternalOperationError{Step: "notify reviewers", Err: err}
	}

	if err := e.presentation.DeliverFeedback(submission, draft.Content); err != nil {
		e.compensateVote(submission, vote)
		return "", &ExternalOperationError{Step: "deliver feedback", Err: err}
	}

	if err := e.presentation.ArchiveReviewThread(submission); err != nil {
		e.logger.Warnw("failed to archive review thread", "submission", submission.ID, "error", err)
	}
	if err := e.presentation.DeleteSubmissionMessage(submission); err != nil {
		e.logger.Warnw("failed to delete submission message", "submission", submission.ID, "error", err)
	}

	e.logDecision(submission, fmt.Sprintf("<@%s> **REJECTED** the submission.", vote.VoterID))

	if err := Transition(submission, models.SubmissionStateDenied, OperationVote); err != nil {
		return "", err
	}

	return OutcomeRejected, e.store.Save(submission)
}

// finishAddition persists a non-tipping vote and refreshes the embed.
func (e *Executor) finishAddition(submission *models.Submission, vote models.Vote) (Outcome, error) {
	if err := e.store.AppendVote(vote); err != nil {
		RemoveVote(submission, vote.VoterID, vote.Type)
		return "", err
	}

	if err := e.presentation.UpdateSubmission(submission); err != nil {
		e.compensateVote(submission, vote)
		return "", &ExternalOperationError{Step: "update presentation", Err: err}
	}

	return OutcomeVoteAdded, nil
}

// finishRemoval persists a toggled removal. The in-memory ledger has
// already dropped the vote.
func (e *Executor) finishRemoval(submission *models.Submission, vote models.Vote) (Outcome, error) {
	if err := e.store.DeleteVote(submission.ID, vote.VoterID, vote.Type); err != nil {
		submission.Votes = append(submission.Votes, vote)
		return "", err
	}

	e.updatePresentation(submission)

	return OutcomeVoteRemoved, nil
}

// compensateVote reverts an already-applied vote after a failed side
// effect. The ledger and the database both drop the vote.
func (e *Executor) compensateVote(submission *models.Submission, vote models.Vote) {
	RemoveVote(submission, vote.VoterID, vote.Type)

	if err := e.store.DeleteVote(submission.ID, vote.VoterID, vote.Type); err != nil {
		e.logger.Errorw("failed to compensate vote",
			"submission", submission.ID, "voter", vote.VoterID, "type", vote.Type, "error", err)
	}
}

func (e *Executor) updatePresentation(submission *models.Submission) {
	if err := e.presentation.UpdateSubmission(submission); err != nil {
		e.logger.Warnw("failed to update submission message", "submission", submission.ID, "error", err)
	}
}

func (e *Executor) logDecision(submission *models.Submission, description string) {
	if err := e.presentation.LogDecision(submission, description); err != nil {
		e.logger.Warnw("failed to write decision log", "submission", submission.ID, "error", err)
	}
}

// missingRequiredData names the first required field a submission still
// lacks, or returns an empty string when the record is complete.
func missingRequiredData(submission *models.Submission) string {
	switch {
	case submission.AuthorID == "":
		return "author"
	case submission.SourceLink == "":
		return "source link"
	case submission.MessageID == "":
		return "submission message"
	case submission.ReviewThreadID == "":
		return "review thread"
	}
	return ""
}

func withoutVoteType(votes []models.Vote, voteType models.VoteType) []models.Vote {
	filtered := votes[:0]
	for _, vote := range votes {
		if vote.Type != voteType {
			filtered = append(filtered, vote)
		}
	}
	return filtered
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}
