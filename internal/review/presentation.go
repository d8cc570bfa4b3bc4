package review

import "github.com/TheCodingDen/projects-bot/internal/db/models"

// Presentation is the chat-surface contract the executor depends on. All
// methods are fallible network calls; the executor decides per step which
// failures compensate, which surface, and which are best-effort.
type Presentation interface {
	// UpdateSubmission re-renders the submission's review message.
	UpdateSubmission(submission *models.Submission) error

	// PublishShowcase announces an accepted submission publicly.
	PublishShowcase(submission *models.Submission) error

	// ArchiveReviewThread closes the submission's review surface.
	ArchiveReviewThread(submission *models.Submission) error

	// DeleteSubmissionMessage removes the origin review post.
	DeleteSubmissionMessage(submission *models.Submission) error

	// ReviewerMentions returns mention strings for the union of review
	// thread participants and past voters, excluding bot accounts.
	ReviewerMentions(submission *models.Submission) ([]string, error)

	// NotifyReviewers pings the reviewer set in the feedback surface.
	NotifyReviewers(submission *models.Submission, mentions []string) error

	// DeliverFeedback posts content to the submission's feedback thread,
	// creating the thread if absent, and returns once delivery is
	// acknowledged. Implementations record the created thread on the
	// submission.
	DeliverFeedback(submission *models.Submission, content string) error

	// SendPublicLog posts to the public log channel.
	SendPublicLog(content string) error

	// LogDecision records a moderation decision in the private log.
	LogDecision(submission *models.Submission, description string) error
}
