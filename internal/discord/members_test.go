package discord

import (
	"testing"

	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	mock_repositories "github.com/TheCodingDen/projects-bot/internal/db/repositories/mocks"
	"github.com/TheCodingDen/projects-bot/internal/review"
	mock_review "github.com/TheCodingDen/projects-bot/internal/review/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type memberFixture struct {
	submissions  *mock_repositories.MockSubmissionRepository
	presentation *mock_review.MockPresentation
	session      *discordgo.Session
	bot          *Bot
}

func newMemberFixture(t *testing.T) *memberFixture {
	ctrl := gomock.NewController(t)
	submissions := mock_repositories.NewMockSubmissionRepository(ctrl)
	votes := mock_repositories.NewMockVoteRepository(ctrl)
	drafts := mock_repositories.NewMockDraftRepository(ctrl)
	presentation := mock_review.NewMockPresentation(ctrl)

	logger := zap.NewNop().Sugar()
	store := review.NewStore(submissions, votes, drafts, logger)
	executor := review.NewExecutor(store, presentation, review.NewThresholds(configs.Vote{
		StaffApproveThreshold:    2,
		StaffRejectThreshold:     2,
		VeteransApproveThreshold: 3,
		VeteransRejectThreshold:  3,
	}), logger)

	session := &discordgo.Session{State: discordgo.NewState()}
	session.State.User = &discordgo.User{ID: "bot-1"}

	return &memberFixture{
		submissions:  submissions,
		presentation: presentation,
		session:      session,
		bot:          NewBot(session, configs.Discord{}, executor, store, review.NewTemplateRouter(), logger),
	}
}

func memberRemoveEvent(userID string) *discordgo.GuildMemberRemove {
	return &discordgo.GuildMemberRemove{
		Member: &discordgo.Member{User: &discordgo.User{ID: userID}},
	}
}

func TestHandleMemberRemove_SilentlyRejectsOpenSubmissions(t *testing.T) {
	f := newMemberFixture(t)
	open := &models.Submission{
		ID:       "sub-1",
		Name:     "My Project",
		AuthorID: "author-1",
		State:    models.SubmissionStateProcessing,
	}

	f.submissions.EXPECT().GetManyOpenByAuthor("author-1").Return([]*models.Submission{open}, nil)
	f.presentation.EXPECT().LogDecision(open, gomock.Any()).Return(nil)
	f.presentation.EXPECT().ArchiveReviewThread(open).Return(nil)
	f.presentation.EXPECT().DeleteSubmissionMessage(open).Return(nil)
	f.submissions.EXPECT().Update(open).Return(open, nil)

	f.bot.handleMemberRemove(f.session, memberRemoveEvent("author-1"))

	assert.Equal(t, models.SubmissionStateDenied, open.State)
}

func TestHandleMemberRemove_NoOpenSubmissions(t *testing.T) {
	f := newMemberFixture(t)

	f.submissions.EXPECT().GetManyOpenByAuthor("author-2").Return(nil, nil)

	f.bot.handleMemberRemove(f.session, memberRemoveEvent("author-2"))
}
