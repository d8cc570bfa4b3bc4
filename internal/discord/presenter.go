package discord

import (
	"fmt"
	"strings"

	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/review"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var stateColours = map[models.SubmissionState]int{
	models.SubmissionStateRaw:        0x90C8AC,
	models.SubmissionStateProcessing: 0x90C8AC,
	models.SubmissionStateWarning:    0xE5EBB2,
	models.SubmissionStateError:      0xFF7878,
	models.SubmissionStatePaused:     0xF8C4B4,
	models.SubmissionStateAccepted:   0x4A90E2,
	models.SubmissionStateDenied:     0xFF7878,
}

// Presenter is the discordgo-backed presentation surface: review embeds,
// feedback threads, showcase and log channels.
type Presenter struct {
	session *discordgo.Session
	config  configs.Discord
	logger  *zap.SugaredLogger
}

func NewPresenter(session *discordgo.Session, config configs.Discord, logger *zap.SugaredLogger) *Presenter {
	return &Presenter{
		session: session,
		config:  config,
		logger:  logger,
	}
}

// ResolveAuthor checks the submission author is still a guild member.
func (p *Presenter) ResolveAuthor(authorID string) error {
	_, err := p.session.GuildMember(p.config.GuildID, authorID)
	if err != nil {
		return fmt.Errorf("could not resolve author %s: %w", authorID, err)
	}
	return nil
}

// PostSubmission sends the review embed with vote buttons and opens the
// review thread, recording both ids on the submission.
func (p *Presenter) PostSubmission(submission *models.Submission) error {
	message, err := p.session.ChannelMessageSendComplex(p.config.PrivateSubmissionsChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderSubmission(submission)},
		Components: voteButtons(),
	})
	if err != nil {
		return fmt.Errorf("failed to send submission message: %w", err)
	}

	submission.MessageID = message.ID

	thread, err := p.session.MessageThreadStartComplex(message.ChannelID, message.ID, &discordgo.ThreadStart{
		Name:                fmt.Sprintf("Review: %s", submission.Name),
		AutoArchiveDuration: 10080,
	})
	if err != nil {
		return fmt.Errorf("failed to create review thread: %w", err)
	}

	submission.ReviewThreadID = thread.ID
	return nil
}

func (p *Presenter) UpdateSubmission(submission *models.Submission) error {
	embed := renderSubmission(submission)

	_, err := p.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: p.config.PrivateSubmissionsChannelID,
		ID:      submission.MessageID,
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
	return err
}

func (p *Presenter) PublishShowcase(submission *models.Submission) error {
	_, err := p.session.ChannelMessageSendEmbed(p.config.PublicShowcaseChannelID, renderSubmission(submission))
	return err
}

func (p *Presenter) ArchiveReviewThread(submission *models.Submission) error {
	if submission.ReviewThreadID == "" {
		return nil
	}

	archived := true
	_, err := p.session.ChannelEditComplex(submission.ReviewThreadID, &discordgo.ChannelEdit{
		Archived: &archived,
	})
	return err
}

func (p *Presenter) DeleteSubmissionMessage(submission *models.Submission) error {
	if submission.MessageID == "" {
		return nil
	}

	return p.session.ChannelMessageDelete(p.config.PrivateSubmissionsChannelID, submission.MessageID)
}

// ReviewerMentions unions the review thread participants with every past
// voter, excluding bot accounts.
func (p *Presenter) ReviewerMentions(submission *models.Submission) ([]string, error) {
	seen := make(map[string]bool)

	if submission.ReviewThreadID != "" {
		members, err := p.session.ThreadMembers(submission.ReviewThreadID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch thread members: %w", err)
		}

		for _, member := range members {
			seen[member.UserID] = true
		}
	}

	for _, vote := range submission.Votes {
		seen[vote.VoterID] = true
	}

	mentions := make([]string, 0, len(seen))

	for userID := range seen {
		// Member fetches can report users that left, fall back to the
		// user endpoint for the bot check.
		user, err := p.session.User(userID)
		if err != nil {
			p.logger.Warnw("failed to resolve reviewer", "user", userID, "error", err)
			continue
		}

		if user.Bot {
			continue
		}

		mentions = append(mentions, fmt.Sprintf("<@%s>", userID))
	}

	return mentions, nil
}

// NotifyReviewers pings the reviewer set in the feedback thread, then
// removes the ping message so only the feedback remains visible.
func (p *Presenter) NotifyReviewers(submission *models.Submission, mentions []string) error {
	if len(mentions) == 0 {
		return nil
	}

	threadID, err := p.ensureFeedbackThread(submission)
	if err != nil {
		return err
	}

	message, err := p.session.ChannelMessageSend(threadID, strings.Join(mentions, ", "))
	if err != nil {
		return err
	}

	if err := p.session.ChannelMessageDelete(threadID, message.ID); err != nil {
		p.logger.Warnw("failed to delete reviewer ping", "submission", submission.ID, "error", err)
	}

	return nil
}

func (p *Presenter) DeliverFeedback(submission *models.Submission, content string) error {
	threadID, err := p.ensureFeedbackThread(submission)
	if err != nil {
		return err
	}

	_, err = p.session.ChannelMessageSend(threadID, content)
	return err
}

func (p *Presenter) SendPublicLog(content string) error {
	_, err := p.session.ChannelMessageSend(p.config.PublicLogsChannelID, content)
	return err
}

func (p *Presenter) LogDecision(submission *models.Submission, description string) error {
	embed := &discordgo.MessageEmbed{
		Title:       submission.Name,
		Description: description,
		Color:       stateColours[submission.State],
		Fields: []*discordgo.MessageEmbedField{
			{Name: "ID", Value: submission.ID},
			{Name: "Source", Value: submission.SourceLink},
			{Name: "Author", Value: fmt.Sprintf("<@%s> (%s)", submission.AuthorID, submission.AuthorID)},
		},
	}

	_, err := p.session.ChannelMessageSendEmbed(p.config.PrivateLogsChannelID, embed)
	return err
}

func (p *Presenter) ensureFeedbackThread(submission *models.Submission) (string, error) {
	if submission.FeedbackThreadID != "" {
		return submission.FeedbackThreadID, nil
	}

	thread, err := p.session.ThreadStartComplex(p.config.FeedbackChannelID, &discordgo.ThreadStart{
		Name:                fmt.Sprintf("Feedback: %s", submission.Name),
		AutoArchiveDuration: 10080,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create feedback thread: %w", err)
	}

	submission.FeedbackThreadID = thread.ID
	return thread.ID, nil
}

func renderSubmission(submission *models.Submission) *discordgo.MessageEmbed {
	staffUp := review.CountVotes(submission, models.VoteTypeUp, models.VoteRoleStaff)
	veteransUp := review.CountVotes(submission, models.VoteTypeUp, models.VoteRoleVeterans)
	staffDown := review.CountVotes(submission, models.VoteTypeDown, models.VoteRoleStaff)
	veteransDown := review.CountVotes(submission, models.VoteTypeDown, models.VoteRoleVeterans)

	links := submission.SourceLink
	if submission.OtherLink != "" {
		links = fmt.Sprintf("%s\n%s", submission.SourceLink, submission.OtherLink)
	}

	return &discordgo.MessageEmbed{
		Title:       submission.Name,
		Description: submission.Description,
		Color:       stateColours[submission.State],
		Fields: []*discordgo.MessageEmbedField{
			{Name: "State", Value: submission.State.CapitalizedString(), Inline: true},
			{Name: "Author", Value: fmt.Sprintf("<@%s>", submission.AuthorID), Inline: true},
			{Name: "Tech", Value: submission.Tech, Inline: true},
			{Name: "Links", Value: links},
			{Name: "Upvotes", Value: fmt.Sprintf("Staff: %d | Veterans: %d", staffUp, veteransUp), Inline: true},
			{Name: "Downvotes", Value: fmt.Sprintf("Staff: %d | Veterans: %d", staffDown, veteransDown), Inline: true},
		},
	}
}

func voteButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{CustomID: "upvote", Label: "Upvote", Style: discordgo.SuccessButton, Emoji: discordgo.ComponentEmoji{Name: "👍"}},
				discordgo.Button{CustomID: "downvote", Label: "Downvote", Style: discordgo.DangerButton, Emoji: discordgo.ComponentEmoji{Name: "👎"}},
				discordgo.Button{CustomID: "pause", Label: "Pause", Style: discordgo.SecondaryButton, Emoji: discordgo.ComponentEmoji{Name: "⏸️"}},
			},
		},
	}
}
