package review_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	mock_repositories "github.com/TheCodingDen/projects-bot/internal/db/repositories/mocks"
	"github.com/TheCodingDen/projects-bot/internal/review"
	mock_review "github.com/TheCodingDen/projects-bot/internal/review/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	submissions  *mock_repositories.MockSubmissionRepository
	votes        *mock_repositories.MockVoteRepository
	presentation *mock_review.MockPresentation
	store        *review.Store
	executor     *review.Executor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	submissions := mock_repositories.NewMockSubmissionRepository(ctrl)
	votes := mock_repositories.NewMockVoteRepository(ctrl)
	drafts := mock_repositories.NewMockDraftRepository(ctrl)
	presentation := mock_review.NewMockPresentation(ctrl)

	logger := zap.NewNop().Sugar()
	store := review.NewStore(submissions, votes, drafts, logger)
	thresholds := review.NewThresholds(configs.Vote{
		StaffApproveThreshold:    2,
		StaffRejectThreshold:     2,
		VeteransApproveThreshold: 3,
		VeteransRejectThreshold:  3,
	})

	return &fixture{
		submissions:  submissions,
		votes:        votes,
		presentation: presentation,
		store:        store,
		executor:     review.NewExecutor(store, presentation, thresholds, logger),
	}
}

func processingSubmission(votes ...models.Vote) *models.Submission {
	return &models.Submission{
		ID:       "sub-1",
		Name:     "My Project",
		AuthorID: "author-1",
		State:    models.SubmissionStateProcessing,
		Votes:    votes,
	}
}

func vote(voterID string, role models.VoteRole, voteType models.VoteType) models.Vote {
	return models.Vote{
		SubmissionID: "sub-1",
		VoterID:      voterID,
		Role:         role,
		Type:         voteType,
	}
}

func TestUpvote_BelowThresholdAddsVote(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Create(gomock.Any()).Return(&models.Vote{}, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)

	outcome, err := f.executor.Upvote(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeVoteAdded, outcome)
	assert.Equal(t, models.SubmissionStateProcessing, submission.State)
}

func TestUpvote_SecondStaffVoteAccepts(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Create(gomock.Any()).Return(&models.Vote{}, nil)
	f.presentation.EXPECT().ArchiveReviewThread(submission).Return(nil)
	f.presentation.EXPECT().DeleteSubmissionMessage(submission).Return(nil)
	f.presentation.EXPECT().PublishShowcase(submission).Return(nil)
	f.presentation.EXPECT().LogDecision(submission, gomock.Any()).Return(nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)

	outcome, err := f.executor.Upvote(vote("bob", models.VoteRoleStaff, models.VoteTypeUp))

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeAccepted, outcome)
	assert.Equal(t, models.SubmissionStateAccepted, submission.State)
}

func TestUpvote_ToggleRemovesExistingVote(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Delete("sub-1", "alice", models.VoteTypeUp).Return(nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)

	outcome, err := f.executor.Upvote(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeVoteRemoved, outcome)
	assert.Empty(t, submission.Votes)
}

func TestUpvote_ConflictingDownvoteRejected(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission(vote("alice", models.VoteRoleStaff, models.VoteTypeDown))
	submission.Drafts = []models.Draft{{ID: "d1", Content: "feedback"}}

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)

	_, err := f.executor.Upvote(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	var conflict *review.ConflictingVoteError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, 1, len(submission.Votes))
}

func TestUpvote_PausedSubmissionRejected(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()
	submission.State = models.SubmissionStatePaused

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)

	_, err := f.executor.Upvote(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	var invalid *review.InvalidStateTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.SubmissionStatePaused, invalid.State)
	assert.Empty(t, submission.Votes)
}

func TestDownvote_WithoutDraftRejected(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)

	_, err := f.executor.Downvote(vote("alice", models.VoteRoleStaff, models.VoteTypeDown))

	assert.ErrorIs(t, err, review.ErrMissingDraft)
	assert.Empty(t, submission.Votes)
	assert.Equal(t, models.SubmissionStateProcessing, submission.State)
}

func TestDownvote_SecondStaffVoteRejects(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission(vote("alice", models.VoteRoleStaff, models.VoteTypeDown))
	submission.Drafts = []models.Draft{{ID: "d1", Content: "please add a readme"}}

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Create(gomock.Any()).Return(&models.Vote{}, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)
	f.presentation.EXPECT().ReviewerMentions(submission).Return([]string{"<@alice>", "<@bob>"}, nil)
	f.presentation.EXPECT().NotifyReviewers(submission, []string{"<@alice>", "<@bob>"}).Return(nil)
	f.presentation.EXPECT().DeliverFeedback(submission, "please add a readme").Return(nil)
	f.presentation.EXPECT().ArchiveReviewThread(submission).Return(nil)
	f.presentation.EXPECT().DeleteSubmissionMessage(submission).Return(nil)
	f.presentation.EXPECT().LogDecision(submission, gomock.Any()).Return(nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)

	outcome, err := f.executor.Downvote(vote("bob", models.VoteRoleStaff, models.VoteTypeDown))

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeRejected, outcome)
	assert.Equal(t, models.SubmissionStateDenied, submission.State)
}

func TestPause_NonStaffRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.executor.Pause(vote("alice", models.VoteRoleVeterans, models.VoteTypePause))

	assert.ErrorIs(t, err, review.ErrStaffOnly)
}

func TestPause_StaffPausesProcessingSubmission(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Create(gomock.Any()).Return(&models.Vote{}, nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)
	f.presentation.EXPECT().LogDecision(submission, gomock.Any()).Return(nil)

	outcome, err := f.executor.Pause(vote("alice", models.VoteRoleStaff, models.VoteTypePause))

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomePaused, outcome)
	assert.Equal(t, models.SubmissionStatePaused, submission.State)
}

func TestUnpause_StaffResumesVoting(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission(vote("alice", models.VoteRoleStaff, models.VoteTypePause))
	submission.State = models.SubmissionStatePaused

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().DeleteManyByType("sub-1", models.VoteTypePause).Return(nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)
	f.presentation.EXPECT().LogDecision(submission, gomock.Any()).Return(nil)

	outcome, err := f.executor.Unpause(vote("bob", models.VoteRoleStaff, models.VoteTypePause))

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeUnpaused, outcome)
	assert.Equal(t, models.SubmissionStateProcessing, submission.State)
	assert.Empty(t, submission.Votes)
}

func TestForceReject_PublicLocationSkipsCleanup(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	router := review.NewTemplateRouter()
	template, ok := router.LookupByKey("invalid-id")
	assert.True(t, ok)

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.presentation.EXPECT().SendPublicLog(gomock.Any()).Return(nil)
	f.presentation.EXPECT().LogDecision(submission, gomock.Any()).Return(nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)

	outcome, err := f.executor.ForceReject("staff-1", models.VoteRoleStaff, "sub-1", template)

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeCleanupNotRun, outcome)
	assert.Equal(t, models.SubmissionStateDenied, submission.State)
}

func TestForceReject_ThreadLocationRunsCleanup(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	router := review.NewTemplateRouter()
	template, ok := router.LookupByKey("plagiarism")
	assert.True(t, ok)

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.presentation.EXPECT().DeliverFeedback(submission, gomock.Any()).Return(nil)
	f.presentation.EXPECT().LogDecision(submission, gomock.Any()).Return(nil)
	f.presentation.EXPECT().ArchiveReviewThread(submission).Return(nil)
	f.presentation.EXPECT().DeleteSubmissionMessage(submission).Return(nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)

	outcome, err := f.executor.ForceReject("staff-1", models.VoteRoleStaff, "sub-1", template)

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeInstantReject, outcome)
	assert.Equal(t, models.SubmissionStateDenied, submission.State)
}

func TestForceReject_DeliveryFailureReportsError(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	router := review.NewTemplateRouter()
	template, ok := router.LookupByKey("plagiarism")
	assert.True(t, ok)

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.presentation.EXPECT().DeliverFeedback(submission, gomock.Any()).Return(errors.New("discord error"))

	_, err := f.executor.ForceReject("staff-1", models.VoteRoleStaff, "sub-1", template)

	var external *review.ExternalOperationError
	assert.ErrorAs(t, err, &external)
	assert.Equal(t, models.SubmissionStateProcessing, submission.State)
}

func TestForceReject_NonStaffRejected(t *testing.T) {
	f := newFixture(t)

	router := review.NewTemplateRouter()
	template, _ := router.LookupByKey("plagiarism")

	_, err := f.executor.ForceReject("vet-1", models.VoteRoleVeterans, "sub-1", template)

	assert.ErrorIs(t, err, review.ErrStaffOnly)
}

func TestAccept_PublishFailureCompensatesVote(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission(vote("alice", models.VoteRoleStaff, models.VoteTypeUp))

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Create(gomock.Any()).Return(&models.Vote{}, nil)
	f.presentation.EXPECT().ArchiveReviewThread(submission).Return(nil)
	f.presentation.EXPECT().DeleteSubmissionMessage(submission).Return(nil)
	f.presentation.EXPECT().PublishShowcase(submission).Return(errors.New("discord error"))
	f.votes.EXPECT().Delete("sub-1", "bob", models.VoteTypeUp).Return(nil)

	_, err := f.executor.Upvote(vote("bob", models.VoteRoleStaff, models.VoteTypeUp))

	var external *review.ExternalOperationError
	assert.ErrorAs(t, err, &external)
	assert.Equal(t, models.SubmissionStateProcessing, submission.State)

	// The tipping vote has been compensated, only the original remains.
	assert.Equal(t, 1, len(submission.Votes))
	assert.Equal(t, "alice", submission.Votes[0].VoterID)
}

func TestEdit_StaffChangesSubmissionDetail(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)

	outcome, err := f.executor.Edit(models.VoteRoleStaff, "sub-1", review.EditFieldName, "Renamed Project")

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeEdited, outcome)
	assert.Equal(t, "Renamed Project", submission.Name)
}

func TestEdit_NonStaffRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.executor.Edit(models.VoteRoleVeterans, "sub-1", review.EditFieldName, "Renamed Project")

	assert.ErrorIs(t, err, review.ErrStaffOnly)
}

func TestEdit_AuthorOnlyInErrorState(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)

	_, err := f.executor.Edit(models.VoteRoleStaff, "sub-1", review.EditFieldAuthor, "author-2")

	var invalid *review.InvalidStateTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "author-1", submission.AuthorID)
}

func TestEdit_AuthorChangesInErrorState(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()
	submission.State = models.SubmissionStateError

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)

	outcome, err := f.executor.Edit(models.VoteRoleStaff, "sub-1", review.EditFieldAuthor, "author-2")

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeEdited, outcome)
	assert.Equal(t, "author-2", submission.AuthorID)
}

func TestEdit_TerminalSubmissionRejected(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()
	submission.State = models.SubmissionStateAccepted

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)

	_, err := f.executor.Edit(models.VoteRoleStaff, "sub-1", review.EditFieldName, "Renamed Project")

	var invalid *review.InvalidStateTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "My Project", submission.Name)
}

func TestRevalidate_CompleteSubmissionResumesProcessing(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()
	submission.State = models.SubmissionStateWarning
	submission.SourceLink = "https://github.com/author/project"
	submission.MessageID = "msg-1"
	submission.ReviewThreadID = "thread-1"

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.submissions.EXPECT().Update(submission).Return(submission, nil)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil)

	outcome, err := f.executor.Revalidate("sub-1")

	assert.NoError(t, err)
	assert.Equal(t, review.OutcomeRevalidated, outcome)
	assert.Equal(t, models.SubmissionStateProcessing, submission.State)
}

func TestRevalidate_IncompleteSubmissionStaysPut(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()
	submission.State = models.SubmissionStateError

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)

	_, err := f.executor.Revalidate("sub-1")

	var external *review.ExternalOperationError
	assert.ErrorAs(t, err, &external)
	assert.Equal(t, models.SubmissionStateError, submission.State)
}

func TestConcurrentVotes_BothApplySerially(t *testing.T) {
	f := newFixture(t)
	submission := processingSubmission()
	submission.Drafts = []models.Draft{{ID: "d1", Content: "feedback"}}

	f.submissions.EXPECT().GetOne("sub-1").Return(submission, nil)
	f.votes.EXPECT().Create(gomock.Any()).Return(&models.Vote{}, nil).Times(2)
	f.presentation.EXPECT().UpdateSubmission(submission).Return(nil).Times(2)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := f.executor.Upvote(vote("alice", models.VoteRoleVeterans, models.VoteTypeUp))
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := f.executor.Downvote(vote("bob", models.VoteRoleVeterans, models.VoteTypeDown))
		assert.NoError(t, err)
	}()

	wg.Wait()

	assert.Equal(t, 2, len(submission.Votes))
	assert.Equal(t, 1, review.CountVotes(submission, models.VoteTypeUp, models.VoteRoleVeterans))
	assert.Equal(t, 1, review.CountVotes(submission, models.VoteTypeDown, models.VoteRoleVeterans))
}
